package assignment

import "errors"

var (
	// ErrDuplicateActive возвращается при попытке создать второе активное
	// назначение для пары (поездка, дайвер)
	ErrDuplicateActive = errors.New("assignment.repository: diver already has an active assignment for this trip")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)
