package domain

// Tag is a descriptive label ("special") attached to appointments
type Tag struct {
	ID    string
	Name  string
	Color string // css color class, e.g. "bg-blue-200"
}
