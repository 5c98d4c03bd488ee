package report

import (
	"context"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, r *MonthlyStoreReport) error
	FindByStoreAndMonth(ctx context.Context, companyID, storeID, month string) (*MonthlyStoreReport, error)
	FindAllByMonth(ctx context.Context, companyID, month string) ([]MonthlyStoreReport, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert replaces the projection row for the store and month. Replays of the
// same event converge on the same row, which keeps consumption idempotent.
func (r *repository) Upsert(ctx context.Context, report *MonthlyStoreReport) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "store_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"timesheet_id", "total_hours", "employee_hours", "updated_at",
			}),
		}).
		Create(report).Error
}

func (r *repository) FindByStoreAndMonth(ctx context.Context, companyID, storeID, month string) (*MonthlyStoreReport, error) {
	var report MonthlyStoreReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("store_id = ? AND month = ?", storeID, month).
		First(&report).Error
	return &report, err
}

func (r *repository) FindAllByMonth(ctx context.Context, companyID, month string) ([]MonthlyStoreReport, error) {
	var rows []MonthlyStoreReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("month = ?", month).
		Order("store_id ASC").
		Find(&rows).Error
	return rows, err
}
