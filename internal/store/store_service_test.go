package store_test

import (
	"context"
	"database/sql"
	"testing"

	"go-pontaj/internal/store"
	storeerrors "go-pontaj/internal/store/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeStoreRepository struct {
	withTxFn               func(tx *sql.Tx) store.Repository
	createFn               func(ctx context.Context, s *store.Store) error
	updateFn               func(ctx context.Context, s *store.Store) error
	findByIDAndCompanyFn   func(ctx context.Context, companyID, id string) (*store.Store, error)
	findByCodeAndCompanyFn func(ctx context.Context, companyID, code string) (*store.Store, error)
	findAllByCompanyFn     func(ctx context.Context, companyID string, activeOnly bool) ([]store.Store, error)
	findAllByZoneFn        func(ctx context.Context, companyID, zoneID string) ([]store.Store, error)
}

func (f *fakeStoreRepository) WithTx(tx *sql.Tx) store.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeStoreRepository) Create(ctx context.Context, s *store.Store) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeStoreRepository) Update(ctx context.Context, s *store.Store) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeStoreRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*store.Store, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepository) FindByCodeAndCompany(ctx context.Context, companyID, code string) (*store.Store, error) {
	if f.findByCodeAndCompanyFn != nil {
		return f.findByCodeAndCompanyFn(ctx, companyID, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStoreRepository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]store.Store, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, activeOnly)
	}
	return nil, nil
}

func (f *fakeStoreRepository) FindAllByZone(ctx context.Context, companyID, zoneID string) ([]store.Store, error) {
	if f.findAllByZoneFn != nil {
		return f.findAllByZoneFn(ctx, companyID, zoneID)
	}
	return nil, nil
}

type storeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service store.Service
	repo    *fakeStoreRepository
}

func setupStoreServiceTest(t *testing.T) *storeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeStoreRepository{}
	svc := store.NewService(db, repo)

	return &storeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
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

func TestStoreService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupStoreServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Create(ctx, companyID, store.CreateStoreRequest{
			Name: "Farmacia Centrala",
			Code: "FC-01",
		})
		assert.NoError(t, err)
		assert.Equal(t, "FC-01", resp.Code)
		assert.True(t, resp.IsActive)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate code", func(t *testing.T) {
		deps := setupStoreServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByCodeAndCompanyFn = func(ctx context.Context, cid, code string) (*store.Store, error) {
			return &store.Store{Code: code}, nil
		}

		_, err := deps.service.Create(ctx, companyID, store.CreateStoreRequest{
			Name: "Farmacia Centrala",
			Code: "FC-01",
		})
		assert.ErrorIs(t, err, storeerrors.ErrDuplicateCode)
	})

	t.Run("invalid zone id", func(t *testing.T) {
		deps := setupStoreServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, companyID, store.CreateStoreRequest{
			Name:   "Farmacia Centrala",
			Code:   "FC-01",
			ZoneID: "zone-1",
		})
		assert.ErrorIs(t, err, storeerrors.ErrInvalidZoneID)
	})
}

func TestStoreService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		deps := setupStoreServiceTest(t)
		defer deps.db.Close()

		existing := &store.Store{
			ID:        uuid.New(),
			CompanyID: uuid.MustParse(companyID),
			Name:      "Farmacia Centrala",
			Code:      "FC-01",
			IsActive:  true,
		}
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*store.Store, error) {
			return existing, nil
		}

		newName := "Farmacia Centrala Renovata"
		resp, err := deps.service.Update(ctx, companyID, existing.ID.String(), store.UpdateStoreRequest{
			Name: &newName,
		})
		assert.NoError(t, err)
		assert.Equal(t, newName, resp.Name)
		assert.Equal(t, "FC-01", resp.Code)
		assert.True(t, resp.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupStoreServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Update(ctx, companyID, uuid.New().String(), store.UpdateStoreRequest{})
		assert.ErrorIs(t, err, storeerrors.ErrStoreNotFound)
	})
}
