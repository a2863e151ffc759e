package domain

import "errors"

var (
	// ErrInvalidWorkingHours возвращается, когда начало рабочего дня не раньше конца
	ErrInvalidWorkingHours = errors.New("domain: working hours start must be before end")

	// ErrInvalidWeekday возвращается для дня недели вне 0..6
	ErrInvalidWeekday = errors.New("domain: weekday must be between 0 and 6")
)
