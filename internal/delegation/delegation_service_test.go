package delegation_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-pontaj/internal/delegation"
	delegationerrors "go-pontaj/internal/delegation/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDelegationRepository struct {
	withTxFn                    func(tx *sql.Tx) delegation.Repository
	createFn                    func(ctx context.Context, d *delegation.Delegation) error
	updateFn                    func(ctx context.Context, d *delegation.Delegation) error
	findByIDAndCompanyFn        func(ctx context.Context, companyID, id string) (*delegation.Delegation, error)
	findAllByCompanyFn          func(ctx context.Context, companyID, status string) ([]delegation.Delegation, error)
	findAllByEmployeeFn         func(ctx context.Context, companyID, employeeID string) ([]delegation.Delegation, error)
	findApprovedOverlappingFn   func(ctx context.Context, companyID, employeeID string, from time.Time, until *time.Time, excludeID string) ([]delegation.Delegation, error)
	findApprovedForEmployeeOnFn func(ctx context.Context, companyID, employeeID string, on time.Time) (*delegation.Delegation, error)
}

func (f *fakeDelegationRepository) WithTx(tx *sql.Tx) delegation.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDelegationRepository) Create(ctx context.Context, d *delegation.Delegation) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDelegationRepository) Update(ctx context.Context, d *delegation.Delegation) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDelegationRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*delegation.Delegation, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDelegationRepository) FindAllByCompany(ctx context.Context, companyID, status string) ([]delegation.Delegation, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, status)
	}
	return nil, nil
}

func (f *fakeDelegationRepository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]delegation.Delegation, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeDelegationRepository) FindApprovedOverlapping(ctx context.Context, companyID, employeeID string, from time.Time, until *time.Time, excludeID string) ([]delegation.Delegation, error) {
	if f.findApprovedOverlappingFn != nil {
		return f.findApprovedOverlappingFn(ctx, companyID, employeeID, from, until, excludeID)
	}
	return nil, nil
}

func (f *fakeDelegationRepository) FindApprovedForEmployeeOn(ctx context.Context, companyID, employeeID string, on time.Time) (*delegation.Delegation, error) {
	if f.findApprovedForEmployeeOnFn != nil {
		return f.findApprovedForEmployeeOnFn(ctx, companyID, employeeID, on)
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeHomeStoreLookup struct {
	homeStoreIDFn func(ctx context.Context, companyID, employeeID string) (string, error)
}

func (f *fakeHomeStoreLookup) HomeStoreID(ctx context.Context, companyID, employeeID string) (string, error) {
	if f.homeStoreIDFn != nil {
		return f.homeStoreIDFn(ctx, companyID, employeeID)
	}
	return "", nil
}

type delegationServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service delegation.Service
	repo    *fakeDelegationRepository
	homes   *fakeHomeStoreLookup
}

func setupDelegationServiceTest(t *testing.T) *delegationServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDelegationRepository{}
	homes := &fakeHomeStoreLookup{}
	svc := delegation.NewService(db, repo, homes)

	return &delegationServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		homes:   homes,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pending(companyID, employeeID string) *delegation.Delegation {
	return &delegation.Delegation{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		EmployeeID:  uuid.MustParse(employeeID),
		FromStoreID: uuid.New(),
		ToStoreID:   uuid.New(),
		Kind:        delegation.KindDelegation,
		ValidFrom:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      delegation.StatusPending,
	}
}

func TestDelegationService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	employeeID := uuid.New().String()
	fromStore := uuid.New().String()
	toStore := uuid.New().String()

	validUntil := "2026-03-15"

	t.Run("delegation with a closed window", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		var created *delegation.Delegation
		deps.repo.createFn = func(ctx context.Context, d *delegation.Delegation) error {
			created = d
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Kind:        delegation.KindDelegation,
			ValidFrom:   "2026-03-01",
			ValidUntil:  &validUntil,
			Reason:      "seasonal coverage",
		})
		assert.NoError(t, err)
		assert.Equal(t, delegation.StatusPending, resp.Status)
		assert.NotNil(t, resp.ValidUntil)
		assert.Equal(t, validUntil, *resp.ValidUntil)
		assert.NotNil(t, created)
	})

	t.Run("transfer may be open ended", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		resp, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Kind:        delegation.KindTransfer,
			ValidFrom:   "2026-03-01",
		})
		assert.NoError(t, err)
		assert.Nil(t, resp.ValidUntil)
	})

	t.Run("delegation without valid_until is rejected", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Kind:        delegation.KindDelegation,
			ValidFrom:   "2026-03-01",
		})
		assert.ErrorIs(t, err, delegationerrors.ErrMissingValidUntil)
	})

	t.Run("window ending before it starts", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		until := "2026-02-01"
		_, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Kind:        delegation.KindDelegation,
			ValidFrom:   "2026-03-01",
			ValidUntil:  &until,
		})
		assert.ErrorIs(t, err, delegationerrors.ErrInvalidWindow)
	})

	t.Run("same origin and destination store", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   fromStore,
			Kind:        delegation.KindDelegation,
			ValidFrom:   "2026-03-01",
			ValidUntil:  &validUntil,
		})
		assert.ErrorIs(t, err, delegationerrors.ErrSameStore)
	})

	t.Run("unknown kind", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, actorID, delegation.CreateDelegationRequest{
			EmployeeID:  employeeID,
			FromStoreID: fromStore,
			ToStoreID:   toStore,
			Kind:        "SECONDMENT",
			ValidFrom:   "2026-03-01",
			ValidUntil:  &validUntil,
		})
		assert.ErrorIs(t, err, delegationerrors.ErrInvalidKind)
	})
}

func TestDelegationService_Transitions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	approverID := uuid.New().String()

	t.Run("pending submits", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		d := pending(companyID, employeeID)
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}

		resp, err := deps.service.Submit(ctx, companyID, d.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, delegation.StatusSubmitted, resp.Status)
	})

	t.Run("pending cannot be approved directly", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		d := pending(companyID, employeeID)
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}

		_, err := deps.service.Approve(ctx, companyID, approverID, d.ID.String())
		assert.ErrorIs(t, err, delegationerrors.ErrInvalidTransition)
	})

	t.Run("submitted approves", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		d := pending(companyID, employeeID)
		d.Status = delegation.StatusSubmitted
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}

		resp, err := deps.service.Approve(ctx, companyID, approverID, d.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, delegation.StatusApproved, resp.Status)
		assert.NotNil(t, resp.ApprovedAt)
	})

	t.Run("approval blocked by overlapping approved window", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		d := pending(companyID, employeeID)
		d.Status = delegation.StatusSubmitted
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}
		deps.repo.findApprovedOverlappingFn = func(ctx context.Context, cid, eid string, from time.Time, until *time.Time, excludeID string) ([]delegation.Delegation, error) {
			assert.Equal(t, d.ID.String(), excludeID)
			return []delegation.Delegation{*pending(companyID, employeeID)}, nil
		}

		_, err := deps.service.Approve(ctx, companyID, approverID, d.ID.String())
		assert.ErrorIs(t, err, delegationerrors.ErrOverlappingApproved)
	})

	t.Run("reject requires a reason", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Reject(ctx, companyID, approverID, uuid.New().String(), "")
		assert.ErrorIs(t, err, delegationerrors.ErrRejectionReason)
	})

	t.Run("submitted rejects with reason", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		d := pending(companyID, employeeID)
		d.Status = delegation.StatusSubmitted
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}

		resp, err := deps.service.Reject(ctx, companyID, approverID, d.ID.String(), "window falls in inventory week")
		assert.NoError(t, err)
		assert.Equal(t, delegation.StatusRejected, resp.Status)
		assert.NotNil(t, resp.RejectionReason)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		d := pending(companyID, employeeID)
		d.Status = delegation.StatusApproved
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*delegation.Delegation, error) {
			return d, nil
		}

		_, err := deps.service.Cancel(ctx, companyID, d.ID.String())
		assert.ErrorIs(t, err, delegationerrors.ErrInvalidTransition)
	})

	t.Run("missing delegation", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Submit(ctx, companyID, uuid.New().String())
		assert.ErrorIs(t, err, delegationerrors.ErrDelegationNotFound)
	})
}

func TestDelegationService_EffectiveStoreID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	on := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("approved window wins over the home store", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		target := uuid.New()
		deps.repo.findApprovedForEmployeeOnFn = func(ctx context.Context, cid, eid string, day time.Time) (*delegation.Delegation, error) {
			d := pending(companyID, employeeID)
			d.Status = delegation.StatusApproved
			d.ToStoreID = target
			return d, nil
		}

		storeID, err := deps.service.EffectiveStoreID(ctx, companyID, employeeID, on)
		assert.NoError(t, err)
		assert.Equal(t, target.String(), storeID)
	})

	t.Run("no window falls back to the home store", func(t *testing.T) {
		deps := setupDelegationServiceTest(t)
		defer deps.db.Close()

		home := uuid.New().String()
		deps.homes.homeStoreIDFn = func(ctx context.Context, cid, eid string) (string, error) {
			assert.Equal(t, employeeID, eid)
			return home, nil
		}

		storeID, err := deps.service.EffectiveStoreID(ctx, companyID, employeeID, on)
		assert.NoError(t, err)
		assert.Equal(t, home, storeID)
	})
}
