package employee

import (
	"context"
	"database/sql"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	Update(ctx context.Context, e *Employee) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	FindAllByStore(ctx context.Context, companyID, storeID string, activeOnly bool) ([]Employee, error)
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error) {
	var rows []Employee
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("full_name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByStore(ctx context.Context, companyID, storeID string, activeOnly bool) ([]Employee, error) {
	var rows []Employee
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("store_id = ?", storeID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("full_name ASC").Find(&rows).Error
	return rows, err
}
