package zone

import (
	"context"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=zone_repo.go -destination=mock/zone_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, z *Zone) error
	Update(ctx context.Context, z *Zone) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Zone, error)
	FindByNameAndCompany(ctx context.Context, companyID, name string) (*Zone, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]Zone, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, z *Zone) error {
	return r.db.WithContext(ctx).Create(z).Error
}

func (r *repository) Update(ctx context.Context, z *Zone) error {
	return r.db.WithContext(ctx).Save(z).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Zone, error) {
	var z Zone
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&z, "id = ?", id).Error
	return &z, err
}

func (r *repository) FindByNameAndCompany(ctx context.Context, companyID, name string) (*Zone, error) {
	var z Zone
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&z, "name = ?", name).Error
	return &z, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Zone, error) {
	var rows []Zone
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}
