package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turfhq/turf-admin-service/internal/domain"
	customerRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/customer"
	slotRepo "github.com/turfhq/turf-admin-service/internal/infra/storage/slot"
	"github.com/turfhq/turf-admin-service/pkg/types"
)

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 42
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.created = booking
	return booking, nil
}

type fakeSlotRepo struct {
	slot          *domain.TimeSlot
	updatedStatus *domain.SlotStatus
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	if f.slot == nil || f.slot.ID != id {
		return nil, slotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

func (f *fakeSlotRepo) UpdateStatus(_ context.Context, _ int64, status domain.SlotStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakePricingRepo struct {
	rules []*domain.PricingRule
}

func (f *fakePricingRepo) ListByField(_ context.Context, _ string, _ bool) ([]*domain.PricingRule, error) {
	return f.rules, nil
}

type fakeCustomerRepo struct {
	customer *domain.Customer
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if f.customer == nil || f.customer.ID != id {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return f.customer, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func openSlot() *domain.TimeSlot {
	// 2025-10-18 - суббота
	slotDate, _ := time.Parse(domain.DateFormat, "2025-10-18")
	return &domain.TimeSlot{
		ID:              7,
		SlotKey:         "field-1_2025-10-18_10:00",
		FieldID:         "field-1",
		Date:            slotDate,
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("11:00"),
		DurationMinutes: 60,
		Price:           1000,
		Status:          domain.SlotStatusOpen,
	}
}

func newTestUseCase(slots *fakeSlotRepo, pricing *fakePricingRepo) (*UseCase, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{}
	customers := &fakeCustomerRepo{customer: &domain.Customer{ID: 5, Name: "Test", Email: "t@example.com"}}
	uc := NewUseCase(bookings, slots, pricing, customers, &fakeTxManager{}, nopLogger{})
	return uc, bookings
}

func TestExecute_BookingUsesDayMatchedPrice(t *testing.T) {
	slots := &fakeSlotRepo{slot: openSlot()}
	pricing := &fakePricingRepo{rules: []*domain.PricingRule{
		{
			// Субботнее правило действует - слот на субботу
			FieldID:    "field-1",
			Name:       "Weekend rate",
			Type:       domain.RuleTypeWeekend,
			Multiplier: 1.5,
			StartTime:  types.TimeString("09:00"),
			EndTime:    types.TimeString("18:00"),
			Days:       []domain.Weekday{domain.Saturday, domain.Sunday},
			IsActive:   true,
		},
		{
			// Будничное правило не действует - день не совпадает
			FieldID:    "field-1",
			Name:       "Weekday surge",
			Type:       domain.RuleTypePeak,
			Multiplier: 2.0,
			StartTime:  types.TimeString("09:00"),
			EndTime:    types.TimeString("18:00"),
			Days:       []domain.Weekday{domain.Monday},
			IsActive:   true,
		},
	}}

	uc, bookings := newTestUseCase(slots, pricing)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 5, SlotID: 7})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, resp.Price)
	assert.Equal(t, 1.5, resp.Multiplier)
	assert.Equal(t, 1000.0, resp.BasePrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	require.NotNil(t, bookings.created)
	assert.Equal(t, 1500.0, bookings.created.Price)

	require.NotNil(t, slots.updatedStatus)
	assert.Equal(t, domain.SlotStatusBooked, *slots.updatedStatus)
}

func TestExecute_NoMatchingRulesKeepsBasePrice(t *testing.T) {
	slots := &fakeSlotRepo{slot: openSlot()}
	uc, _ := newTestUseCase(slots, &fakePricingRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 5, SlotID: 7})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, resp.Price)
	assert.Equal(t, 1.0, resp.Multiplier)
}

func TestExecute_SlotNotOpen(t *testing.T) {
	slot := openSlot()
	slot.Status = domain.SlotStatusBooked
	slots := &fakeSlotRepo{slot: slot}
	uc, _ := newTestUseCase(slots, &fakePricingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 5, SlotID: 7})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &fakeSlotRepo{}
	uc, _ := newTestUseCase(slots, &fakePricingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 5, SlotID: 99})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	slots := &fakeSlotRepo{slot: openSlot()}
	uc, _ := newTestUseCase(slots, &fakePricingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 999, SlotID: 7})
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, _ := newTestUseCase(&fakeSlotRepo{}, &fakePricingRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, CustomerID: 0, SlotID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
