package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")

	// ErrEmptyBatch возвращается при попытке сохранить пустой список слотов
	ErrEmptyBatch = errors.New("slot.repository: empty slot batch")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус слота
	ErrInvalidStatus = errors.New("slot.repository: invalid slot status")
)
