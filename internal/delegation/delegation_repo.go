package delegation

import (
	"context"
	"database/sql"
	"time"

	"go-pontaj/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=delegation_repo.go -destination=mock/delegation_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, d *Delegation) error
	Update(ctx context.Context, d *Delegation) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Delegation, error)
	FindAllByCompany(ctx context.Context, companyID string, status string) ([]Delegation, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Delegation, error)
	FindApprovedOverlapping(ctx context.Context, companyID, employeeID string, from time.Time, until *time.Time, excludeID string) ([]Delegation, error)
	FindApprovedForEmployeeOn(ctx context.Context, companyID, employeeID string, on time.Time) (*Delegation, error)
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

func (r *repository) Create(ctx context.Context, d *Delegation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) Update(ctx context.Context, d *Delegation) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Delegation, error) {
	var d Delegation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, status string) ([]Delegation, error) {
	var rows []Delegation
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Delegation, error) {
	var rows []Delegation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("valid_from DESC").
		Find(&rows).Error
	return rows, err
}

// FindApprovedOverlapping returns approved delegations of the employee whose
// window intersects [from, until]. A nil until means an open-ended window,
// which overlaps everything from its start onward.
func (r *repository) FindApprovedOverlapping(ctx context.Context, companyID, employeeID string, from time.Time, until *time.Time, excludeID string) ([]Delegation, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if until != nil {
		q = q.Where("valid_from <= ?", until.Format("2006-01-02"))
	}
	q = q.Where("valid_until IS NULL OR valid_until >= ?", from.Format("2006-01-02"))

	var rows []Delegation
	err := q.Find(&rows).Error
	return rows, err
}

// FindApprovedForEmployeeOn returns the approved delegation covering the given
// date, preferring the most recently started one when several apply.
func (r *repository) FindApprovedForEmployeeOn(ctx context.Context, companyID, employeeID string, on time.Time) (*Delegation, error) {
	var d Delegation
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("valid_from <= ?", on.Format("2006-01-02")).
		Where("valid_until IS NULL OR valid_until >= ?", on.Format("2006-01-02")).
		Order("valid_from DESC").
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
