package pricing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/turfhq/turf-admin-service/internal/domain"
	"github.com/turfhq/turf-admin-service/pkg/dbmetrics"
	"github.com/turfhq/turf-admin-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с правилами ценообразования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил ценообразования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var ruleColumns = []string{
	"id",
	"field_id",
	"name",
	"rule_type",
	"multiplier",
	"start_time",
	"end_time",
	"days",
	"is_active",
	"created_at",
	"updated_at",
}

// Create создает новое правило ценообразования
func (r *Repository) Create(ctx context.Context, rule *domain.PricingRule) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pricing_rules").
		Columns(
			"field_id",
			"name",
			"rule_type",
			"multiplier",
			"start_time",
			"end_time",
			"days",
			"is_active",
		).
		Values(
			rule.FieldID,
			rule.Name,
			rule.Type,
			rule.Multiplier,
			rule.StartTime,
			rule.EndTime,
			pq.Array(weekdaysToStrings(rule.Days)),
			rule.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// GetByID получает правило по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}

	return rule, nil
}

// ListByField получает все правила площадки
// При onlyActive=true возвращаются только активные правила
func (r *Repository) ListByField(ctx context.Context, fieldID string, onlyActive bool) ([]*domain.PricingRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ruleColumns...).
		From("pricing_rules").
		Where(squirrel.Eq{"field_id": fieldID})

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.
		OrderBy("start_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.PricingRule, 0)
	for rows.Next() {
		rule, err := scanRuleFromRows(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByField - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// Update обновляет правило ценообразования
func (r *Repository) Update(ctx context.Context, rule *domain.PricingRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pricing_rules").
		Set("name", rule.Name).
		Set("rule_type", rule.Type).
		Set("multiplier", rule.Multiplier).
		Set("start_time", rule.StartTime).
		Set("end_time", rule.EndTime).
		Set("days", pq.Array(weekdaysToStrings(rule.Days))).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID, "field_id": rule.FieldID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// Delete удаляет правило ценообразования
func (r *Repository) Delete(ctx context.Context, fieldID string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
		Where(squirrel.Eq{"id": id, "field_id": fieldID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// DeleteByField удаляет все правила площадки
// Используется при применении шаблона ценообразования (шаблон заменяет набор правил целиком)
func (r *Repository) DeleteByField(ctx context.Context, fieldID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pricing_rules").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByField - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByField - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByField - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// scanRule сканирует одну строку в правило
func scanRule(row *sql.Row) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	var days pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.FieldID,
		&rule.Name,
		&rule.Type,
		&rule.Multiplier,
		&rule.StartTime,
		&rule.EndTime,
		&days,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanRule - scan rule: %v", ErrScanRow, err)
	}

	weekdays, err := stringsToWeekdays(days)
	if err != nil {
		return nil, err
	}

	rule.Days = weekdays
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

// scanRuleFromRows сканирует правило из курсора множественной выборки
func scanRuleFromRows(rows *sql.Rows) (*domain.PricingRule, error) {
	var rule domain.PricingRule
	var days pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&rule.ID,
		&rule.FieldID,
		&rule.Name,
		&rule.Type,
		&rule.Multiplier,
		&rule.StartTime,
		&rule.EndTime,
		&days,
		&rule.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scanRuleFromRows - scan row: %v", ErrScanRow, err)
	}

	weekdays, err := stringsToWeekdays(days)
	if err != nil {
		return nil, err
	}

	rule.Days = weekdays
	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func weekdaysToStrings(days []domain.Weekday) []string {
	result := make([]string, len(days))
	for i, d := range days {
		result[i] = string(d)
	}
	return result
}

func stringsToWeekdays(days []string) ([]domain.Weekday, error) {
	result := make([]domain.Weekday, len(days))
	for i, d := range days {
		weekday, err := domain.ParseWeekday(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDays, err)
		}
		result[i] = weekday
	}
	return result, nil
}
