package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/dbmetrics"
	"github.com/turfhq/turf-admin-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы со сгенерированными слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// slotColumns список колонок таблицы time_slots в порядке сканирования
var slotColumns = []string{
	"id",
	"slot_key",
	"field_id",
	"slot_date",
	"start_time",
	"end_time",
	"duration_minutes",
	"price",
	"status",
	"created_at",
	"updated_at",
}

// saveBatchChunkSize максимум строк в одном INSERT.
// PostgreSQL ограничивает extended protocol 65535 bind-параметрами,
// у слота их 8 - годовая генерация 15-минутных слотов в один запрос не влезает.
const saveBatchChunkSize = 5000

// SaveBatch сохраняет пачку сгенерированных слотов, разбивая её на чанки
// по saveBatchChunkSize строк. Слоты с уже существующим slot_key
// пропускаются (ON CONFLICT DO NOTHING), поэтому повторная генерация
// одного и того же окна идемпотентна.
// Возвращает количество реально вставленных слотов.
func (r *Repository) SaveBatch(ctx context.Context, slots []*domain.TimeSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, ErrEmptyBatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	var inserted int64
	for start := 0; start < len(slots); start += saveBatchChunkSize {
		end := start + saveBatchChunkSize
		if end > len(slots) {
			end = len(slots)
		}

		n, err := r.insertChunk(ctx, executor, slots[start:end])
		if err != nil {
			return 0, err
		}
		inserted += n
	}

	return inserted, nil
}

func (r *Repository) insertChunk(ctx context.Context, executor DBExecutor, slots []*domain.TimeSlot) (int64, error) {
	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"slot_key",
			"field_id",
			"slot_date",
			"start_time",
			"end_time",
			"duration_minutes",
			"price",
			"status",
		)

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(
			s.SlotKey,
			s.FieldID,
			s.Date,
			s.StartTime,
			s.EndTime,
			s.DurationMinutes,
			s.Price,
			s.Status,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (slot_key) DO NOTHING").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SaveBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: SaveBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: SaveBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - используется
// usecase создания бронирования для защиты от двойного бронирования
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetBySlotKey получает слот по детерминированному ключу
func (r *Repository) GetBySlotKey(ctx context.Context, slotKey string) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"slot_key": slotKey})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlotKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetBySlotKey")
}

// ListWithFilter получает слоты с фильтрацией по площадке, периоду и статусу
// Результат отсортирован по (дата, время начала) по возрастанию
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.SlotListFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"field_id": filter.FieldID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"slot_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"slot_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	query, args, err := selectBuilder.
		OrderBy("slot_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// UpdateStatus обновляет статус слота
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// DeleteOpenByFieldAndRange удаляет незабронированные слоты площадки за период
// Забронированные слоты не трогаем - история бронирований важнее чистки календаря
func (r *Repository) DeleteOpenByFieldAndRange(ctx context.Context, fieldID string, startDate, endDate time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.GtOrEq{"slot_date": startDate}).
		Where(squirrel.LtOrEq{"slot_date": endDate}).
		Where(squirrel.Eq{"status": domain.SlotStatusOpen}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenByFieldAndRange - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenByFieldAndRange - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOpenByFieldAndRange - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// scanSlot сканирует одну строку в слот
func (r *Repository) scanSlot(row *sql.Row, op string) (*domain.TimeSlot, error) {
	var s domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SlotKey,
		&s.FieldID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.DurationMinutes,
		&s.Price,
		&s.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, op, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		var s domain.TimeSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SlotKey,
			&s.FieldID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.DurationMinutes,
			&s.Price,
			&s.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
