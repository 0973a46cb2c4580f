package reports

import "errors"

var (
	// ErrSaleNotFound возвращается, когда продажа с таким номером чека не найдена
	ErrSaleNotFound = errors.New("reports: sale not found")

	// ErrInvalidInput возвращается при некорректных параметрах отчета
	ErrInvalidInput = errors.New("reports: invalid input data")

	// ErrExport возвращается при ошибке формирования файла выгрузки
	ErrExport = errors.New("reports: export failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reports: internal error")
)
