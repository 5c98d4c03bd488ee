package store

import (
	"context"
	"database/sql"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=store_repo.go -destination=mock/store_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Store) error
	Update(ctx context.Context, s *Store) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Store, error)
	FindByCodeAndCompany(ctx context.Context, companyID, code string) (*Store, error)
	FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Store, error)
	FindAllByZone(ctx context.Context, companyID, zoneID string) ([]Store, error)
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

func (r *repository) Create(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Store, error) {
	var s Store
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindByCodeAndCompany(ctx context.Context, companyID, code string) (*Store, error) {
	var s Store
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "code = ?", code).Error
	return &s, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Store, error) {
	var rows []Store
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByZone(ctx context.Context, companyID, zoneID string) ([]Store, error) {
	var rows []Store
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("zone_id = ?", zoneID).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}
