package tag

import "errors"

var (
	// ErrTagNotFound возвращается, когда tag не найден
	ErrTagNotFound = errors.New("tag.repository: tag not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tag.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tag.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tag.repository: failed to scan row")
)
