package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"go-pontaj/internal/employee"
	employeeerrors "go-pontaj/internal/employee/errors"
	"go-pontaj/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	withTxFn             func(tx *sql.Tx) employee.Repository
	createFn             func(ctx context.Context, e *employee.Employee) error
	updateFn             func(ctx context.Context, e *employee.Employee) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employee.Employee, error)
	findAllByCompanyFn   func(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error)
	findAllByStoreFn     func(ctx context.Context, companyID, storeID string, activeOnly bool) ([]employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employee.Employee, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]employee.Employee, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, activeOnly)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindAllByStore(ctx context.Context, companyID, storeID string, activeOnly bool) ([]employee.Employee, error) {
	if f.findAllByStoreFn != nil {
		return f.findAllByStoreFn(ctx, companyID, storeID, activeOnly)
	}
	return nil, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

type fakeOutboxRepository struct {
	created []kafka.OutboxEvent
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.created = append(f.created, event)
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	outbox  *fakeOutboxRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	outbox := &fakeOutboxRepository{}
	svc := employee.NewService(db, repo, &fakeCounterRepository{}, outbox)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		outbox:  outbox,
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

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	storeID := uuid.New().String()

	t.Run("allocates a number and enqueues the lifecycle event", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName: "Ana Pop",
			Email:    "ana.pop@example.com",
			Position: "Farmacist",
			StoreID:  storeID,
			HiredAt:  "2026-02-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "EMP-00001", resp.EmployeeNumber)
		assert.True(t, resp.IsActive)
		assert.Equal(t, "2026-02-01", resp.HiredAt)
		assert.NotNil(t, created)

		assert.Len(t, deps.outbox.created, 1)
		assert.Equal(t, "employee.created", deps.outbox.created[0].EventType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("bad hire date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName: "Ana Pop",
			StoreID:  storeID,
			HiredAt:  "01.02.2026",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("bad store id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, companyID, employee.CreateEmployeeRequest{
			FullName: "Ana Pop",
			StoreID:  "store-1",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStoreID)
	})
}

func TestEmployeeService_HomeStoreID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	storeID := uuid.New()

	t.Run("returns the base assignment", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
			return &employee.Employee{
				ID:        uuid.MustParse(id),
				CompanyID: uuid.MustParse(cid),
				StoreID:   storeID,
			}, nil
		}

		got, err := deps.service.HomeStoreID(ctx, companyID, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, storeID.String(), got)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.HomeStoreID(ctx, companyID, employeeID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	active := &employee.Employee{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		StoreID:   uuid.New(),
		IsActive:  true,
	}
	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employee.Employee, error) {
		return active, nil
	}

	var updated *employee.Employee
	deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
		updated = e
		return nil
	}

	assert.NoError(t, deps.service.Deactivate(ctx, companyID, active.ID.String()))
	assert.NotNil(t, updated)
	assert.False(t, updated.IsActive)
}
