package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfhq/turf-admin-service/internal/domain"
)

// pgMaxBindParams лимит bind-параметров extended protocol PostgreSQL
const pgMaxBindParams = 65535

const slotInsertColumns = 8

type fakeResult struct {
	rows int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, nil }

type fakeExecutor struct {
	argCounts []int
	execErr   error
}

func (f *fakeExecutor) ExecContext(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
	if f.execErr != nil {
		return nil, f.execErr
	}
	f.argCounts = append(f.argCounts, len(args))
	return fakeResult{rows: int64(len(args) / slotInsertColumns)}, nil
}

func (f *fakeExecutor) QueryContext(_ context.Context, _ string, _ ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unexpected query")
}

func (f *fakeExecutor) QueryRowContext(_ context.Context, _ string, _ ...interface{}) *sql.Row {
	return nil
}

func makeSlots(count int) []*domain.TimeSlot {
	date := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	slots := make([]*domain.TimeSlot, 0, count)
	for i := 0; i < count; i++ {
		slots = append(slots, &domain.TimeSlot{
			SlotKey:         fmt.Sprintf("field-1_2025-10-01_%05d", i),
			FieldID:         "field-1",
			Date:            date,
			StartTime:       "09:00",
			EndTime:         "09:15",
			DurationMinutes: 15,
			Price:           1000,
			Status:          domain.SlotStatusOpen,
		})
	}
	return slots
}

func TestSaveBatch_YearOfQuarterHourSlotsFitsParameterLimit(t *testing.T) {
	// 365 дней по 95 слотов (00:00-23:45 с шагом 15 минут)
	const count = 365 * 95

	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	inserted, err := repo.SaveBatch(context.Background(), makeSlots(count))

	require.NoError(t, err)
	assert.Equal(t, int64(count), inserted)

	expectedChunks := (count + saveBatchChunkSize - 1) / saveBatchChunkSize
	assert.Len(t, executor.argCounts, expectedChunks)

	for i, argCount := range executor.argCounts {
		assert.LessOrEqualf(t, argCount, pgMaxBindParams,
			"chunk %d carries %d bind args", i, argCount)
	}
}

func TestSaveBatch_SmallBatchIsSingleStatement(t *testing.T) {
	executor := &fakeExecutor{}
	repo := NewRepository(executor)

	inserted, err := repo.SaveBatch(context.Background(), makeSlots(3))

	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)
	require.Len(t, executor.argCounts, 1)
	assert.Equal(t, 3*slotInsertColumns, executor.argCounts[0])
}

func TestSaveBatch_EmptyBatch(t *testing.T) {
	repo := NewRepository(&fakeExecutor{})

	_, err := repo.SaveBatch(context.Background(), nil)

	assert.ErrorIs(t, err, ErrEmptyBatch)
}

func TestSaveBatch_ExecErrorWrapped(t *testing.T) {
	executor := &fakeExecutor{execErr: errors.New("connection reset")}
	repo := NewRepository(executor)

	_, err := repo.SaveBatch(context.Background(), makeSlots(2))

	assert.ErrorIs(t, err, ErrExecQuery)
}
