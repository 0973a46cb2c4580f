package tablestore

import "errors"

var (
	// ErrInsert возвращается, когда удаленное хранилище отклонило вставку
	ErrInsert = errors.New("tablestore: insert failed")

	// ErrInvalidResponse возвращается, когда ответ хранилища нельзя разобрать
	ErrInvalidResponse = errors.New("tablestore: invalid response")
)
