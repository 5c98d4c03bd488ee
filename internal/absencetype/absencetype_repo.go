package absencetype

import (
	"context"
	"database/sql"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=absencetype_repo.go -destination=mock/absencetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, at *AbsenceType) error
	FindAllByCompany(ctx context.Context, companyID string) ([]AbsenceType, error)
	FindActiveByCompany(ctx context.Context, companyID string) ([]AbsenceType, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*AbsenceType, error)
	FindByCodeAndCompany(ctx context.Context, companyID, code string) (*AbsenceType, error)
	Update(ctx context.Context, at *AbsenceType) error
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

func (r *repository) Create(ctx context.Context, at *AbsenceType) error {
	return r.db.WithContext(ctx).Create(at).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]AbsenceType, error) {
	var rows []AbsenceType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveByCompany(ctx context.Context, companyID string) ([]AbsenceType, error) {
	var rows []AbsenceType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*AbsenceType, error) {
	var at AbsenceType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&at, "id = ?", id).Error
	return &at, err
}

func (r *repository) FindByCodeAndCompany(ctx context.Context, companyID, code string) (*AbsenceType, error) {
	var at AbsenceType
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&at, "code = ?", code).Error
	return &at, err
}

func (r *repository) Update(ctx context.Context, at *AbsenceType) error {
	return r.db.WithContext(ctx).Save(at).Error
}
