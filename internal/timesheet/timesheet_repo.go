package timesheet

import (
	"context"
	"database/sql"
	"time"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Timesheet) error
	Update(ctx context.Context, t *Timesheet) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Timesheet, error)
	FindAllByStore(ctx context.Context, companyID, storeID string) ([]Timesheet, error)
	FindConflictCandidates(ctx context.Context, companyID, storeID string, periodStart, periodEnd time.Time) ([]Timesheet, error)
	ListActiveAbsenceRules(ctx context.Context, companyID string) ([]AbsenceRule, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) Update(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Timesheet, error) {
	var t Timesheet
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) FindAllByStore(ctx context.Context, companyID, storeID string) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("store_id = ?", storeID).
		Order("period_start DESC").
		Find(&rows).Error
	return rows, err
}

// FindConflictCandidates fetches every timesheet of the store that either
// intersects the requested period or starts in the same calendar month;
// classification happens in ClassifyConflict so the query stays broad.
func (r *repository) FindConflictCandidates(ctx context.Context, companyID, storeID string, periodStart, periodEnd time.Time) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("store_id = ?", storeID).
		Where(
			"(period_start <= ? AND period_end >= ?) OR period_month = ?",
			periodEnd.Format(dateLayout),
			periodStart.Format(dateLayout),
			periodStart.Format("2006-01"),
		).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListActiveAbsenceRules(ctx context.Context, companyID string) ([]AbsenceRule, error) {
	var refs []AbsenceTypeRef
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&refs).Error
	if err != nil {
		return nil, err
	}

	rules := make([]AbsenceRule, len(refs))
	for i, ref := range refs {
		rules[i] = AbsenceRule{
			Code:          ref.Code,
			Name:          ref.Name,
			RequiresHours: ref.RequiresHours,
			SortOrder:     ref.SortOrder,
		}
	}
	return rules, nil
}
