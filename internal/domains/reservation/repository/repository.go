package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"termin/infras/otel"
	"termin/infras/postgres"
	"termin/internal/domains/reservation/model"
	"termin/shared/constant"
	gDto "termin/shared/dto"
	"termin/shared/failure"
	"termin/shared/logger"
	gRepo "termin/shared/repository"
	"termin/shared/timezone"
)

const pqUniqueViolation = "23505"

// Reservation persists inquiry rows and their audit trail. Every
// lifecycle write is a conditional statement so concurrent actors
// cannot overwrite each other; callers learn they lost the race from
// the boolean result, not from an error.
type Reservation interface {
	CreatePending(ctx context.Context, res model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Transition(ctx context.Context, id string, from, to model.Status, set map[string]any) (bool, error)
	MarkReminderSent(ctx context.Context, id string, at time.Time) (bool, error)
	SetCalendarEventID(ctx context.Context, id, eventID string) error
	ListDueExpirations(ctx context.Context, now time.Time, limit int) ([]model.Reservation, error)
	ListDueReminders(ctx context.Context, now time.Time, lead time.Duration, limit int) ([]model.Reservation, error)
	AppendAudit(ctx context.Context, entry model.AuditEntry) error
	ListAudit(ctx context.Context, inquiryID string) ([]model.AuditEntry, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	audit gRepo.Repository[model.AuditEntry]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		audit:      gRepo.NewRepository[model.AuditEntry]("audit", model.AuditTableName, "id", db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreatePending inserts the PENDING hold. The insert and the
// no-confirmed-row-holds-this-slot check are one statement, so two
// simultaneous bookers cannot both slip past the guard and no partial
// row is left behind on rejection.
func (repo *repositoryImpl) CreatePending(ctx context.Context, res model.Reservation) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreatePending")
	defer scope.End()
	defer scope.TraceIfError(err)

	columns := repo.InsertColumns
	placeholders := make([]string, len(columns))

	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT %s WHERE NOT EXISTS (SELECT 1 FROM %s WHERE %s = :%s AND %s = '%s')",
		model.TableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		model.TableName,
		model.FieldSlotAt, model.FieldSlotAt,
		model.FieldStatus, model.StatusConfirmed,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, res)
	if err != nil {
		if isUniqueViolation(err) {
			return failure.SlotTaken //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	if affected == 0 {
		return failure.SlotTaken //nolint:wrapcheck
	}

	return nil
}

// Transition moves one row from `from` to `to`, applying any extra
// column writes in the same statement. Returns false when the row's
// status no longer matches, meaning another actor committed first.
func (repo *repositoryImpl) Transition(ctx context.Context, id string, from, to model.Status, set map[string]any) (ok bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := []string{
		fmt.Sprintf("%s = :to_status", model.FieldStatus),
		fmt.Sprintf("%s = :%s", constant.FieldModifiedAt, constant.FieldModifiedAt),
	}
	args := map[string]any{
		model.FieldID:            id,
		"from_status":            from,
		"to_status":              to,
		constant.FieldModifiedAt: timezone.Now(),
	}

	for col, val := range set {
		fields = append(fields, fmt.Sprintf("%s = :%s", col, col))
		args[col] = val
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE %s = :%s AND %s = :from_status",
		model.TableName,
		strings.Join(fields, ", "),
		model.FieldID, model.FieldID,
		model.FieldStatus,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		if isUniqueViolation(err) {
			return false, failure.SlotTaken //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return false, fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	return affected > 0, nil
}

// MarkReminderSent stamps reminder_sent_at once. The IS NULL guard
// makes sweeper re-runs no-ops, so a reminder can never be sent twice.
func (repo *repositoryImpl) MarkReminderSent(ctx context.Context, id string, at time.Time) (ok bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".MarkReminderSent")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :%s, %s = :%s WHERE %s = :%s AND %s = '%s' AND %s IS NULL",
		model.TableName,
		model.FieldReminderSentAt, model.FieldReminderSentAt,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		model.FieldID, model.FieldID,
		model.FieldStatus, model.StatusPending,
		model.FieldReminderSentAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		model.FieldID:             id,
		model.FieldReminderSentAt: at,
		constant.FieldModifiedAt:  timezone.Now(),
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	return affected > 0, nil
}

func (repo *repositoryImpl) SetCalendarEventID(ctx context.Context, id, eventID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".SetCalendarEventID")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET %s = :%s, %s = :%s WHERE %s = :%s",
		model.TableName,
		model.FieldCalendarEventID, model.FieldCalendarEventID,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		model.FieldID, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		model.FieldID:              id,
		model.FieldCalendarEventID: eventID,
		constant.FieldModifiedAt:   timezone.Now(),
	}

	if _, err = repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("%w: %v", failure.StoreUnavailable, err)
	}

	return nil
}

func (repo *repositoryImpl) ListDueExpirations(ctx context.Context, now time.Time, limit int) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPending,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldExpiresAt,
				Value:    now,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldExpiresAt,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListDueReminders(ctx context.Context, now time.Time, lead time.Duration, limit int) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPending,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReminderSentAt,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "due_before",
				Field:    model.FieldExpiresAt,
				Value:    now.Add(lead),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldExpiresAt,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) AppendAudit(ctx context.Context, entry model.AuditEntry) error {
	return repo.audit.Insert(ctx, entry) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListAudit(ctx context.Context, inquiryID string) ([]model.AuditEntry, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    "inquiry_id",
				Value:    inquiryID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.AuditTableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  "occurred_at",
		SortDir: "ASC",
	}

	return repo.audit.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	return false
}
