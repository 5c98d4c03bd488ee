package absencetype_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"go-pontaj/internal/absencetype"
	absencetypeerrors "go-pontaj/internal/absencetype/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeAbsenceTypeRepository struct {
	withTxFn               func(tx *sql.Tx) absencetype.Repository
	createFn               func(ctx context.Context, at *absencetype.AbsenceType) error
	updateFn               func(ctx context.Context, at *absencetype.AbsenceType) error
	findAllByCompanyFn     func(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error)
	findActiveByCompanyFn  func(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error)
	findByIDAndCompanyFn   func(ctx context.Context, companyID, id string) (*absencetype.AbsenceType, error)
	findByCodeAndCompanyFn func(ctx context.Context, companyID, code string) (*absencetype.AbsenceType, error)

	activeCalls int
}

func (f *fakeAbsenceTypeRepository) WithTx(tx *sql.Tx) absencetype.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeAbsenceTypeRepository) Create(ctx context.Context, at *absencetype.AbsenceType) error {
	if f.createFn != nil {
		return f.createFn(ctx, at)
	}
	return nil
}

func (f *fakeAbsenceTypeRepository) Update(ctx context.Context, at *absencetype.AbsenceType) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, at)
	}
	return nil
}

func (f *fakeAbsenceTypeRepository) FindAllByCompany(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeAbsenceTypeRepository) FindActiveByCompany(ctx context.Context, companyID string) ([]absencetype.AbsenceType, error) {
	f.activeCalls++
	if f.findActiveByCompanyFn != nil {
		return f.findActiveByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeAbsenceTypeRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*absencetype.AbsenceType, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAbsenceTypeRepository) FindByCodeAndCompany(ctx context.Context, companyID, code string) (*absencetype.AbsenceType, error) {
	if f.findByCodeAndCompanyFn != nil {
		return f.findByCodeAndCompanyFn(ctx, companyID, code)
	}
	return nil, gorm.ErrRecordNotFound
}

type absenceTypeServiceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   absencetype.Service
	repo      *fakeAbsenceTypeRepository
	redisMock redismock.ClientMock
}

func setupAbsenceTypeServiceTest(t *testing.T) *absenceTypeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	redisClient, redisMock := redismock.NewClientMock()
	repo := &fakeAbsenceTypeRepository{}
	svc := absencetype.NewService(db, repo, redisClient)

	return &absenceTypeServiceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
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

func TestAbsenceTypeService_GetActive(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := absencetype.ActiveTypesCacheKey(companyID)

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		cached := []absencetype.AbsenceTypeResponse{
			{ID: uuid.New().String(), Code: "CO", Name: "Concediu de odihna", IsActive: true},
		}
		payload, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(cacheKey).SetVal(string(payload))

		resp, err := deps.service.GetActive(ctx, companyID)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.Zero(t, deps.repo.activeCalls)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss reads the database and fills the cache", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		rows := []absencetype.AbsenceType{
			{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Code: "CO", Name: "Concediu de odihna", SortOrder: 1, IsActive: true},
			{ID: uuid.New(), CompanyID: uuid.MustParse(companyID), Code: "dispensa", Name: "Dispensa", RequiresHours: true, SortOrder: 2, IsActive: true},
		}
		deps.repo.findActiveByCompanyFn = func(ctx context.Context, cid string) ([]absencetype.AbsenceType, error) {
			assert.Equal(t, companyID, cid)
			return rows, nil
		}

		deps.redisMock.ExpectGet(cacheKey).RedisNil()
		deps.redisMock.Regexp().ExpectSet(cacheKey, `.*`, 5*time.Minute).SetVal("OK")

		resp, err := deps.service.GetActive(ctx, companyID)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "CO", resp[0].Code)
		assert.Equal(t, 1, deps.repo.activeCalls)
	})

	t.Run("corrupt cache entry falls back to the database", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(cacheKey).SetVal("{broken")
		deps.redisMock.Regexp().ExpectSet(cacheKey, `.*`, 5*time.Minute).SetVal("OK")

		resp, err := deps.service.GetActive(ctx, companyID)
		assert.NoError(t, err)
		assert.Empty(t, resp)
		assert.Equal(t, 1, deps.repo.activeCalls)
	})
}

func TestAbsenceTypeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success invalidates the active cache", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(absencetype.ActiveTypesCacheKey(companyID)).SetVal(1)

		var created *absencetype.AbsenceType
		deps.repo.createFn = func(ctx context.Context, at *absencetype.AbsenceType) error {
			created = at
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, absencetype.CreateAbsenceTypeRequest{
			Code:      "CM",
			Name:      "Concediu medical",
			SortOrder: 2,
		})
		assert.NoError(t, err)
		assert.Equal(t, "CM", resp.Code)
		assert.True(t, resp.IsActive)
		assert.NotNil(t, created)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate active code", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.findByCodeAndCompanyFn = func(ctx context.Context, cid, code string) (*absencetype.AbsenceType, error) {
			return &absencetype.AbsenceType{Code: code, IsActive: true}, nil
		}

		_, err := deps.service.Create(ctx, companyID, absencetype.CreateAbsenceTypeRequest{
			Code: "CO",
			Name: "Concediu de odihna",
		})
		assert.ErrorIs(t, err, absencetypeerrors.ErrDuplicateCode)
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "nope", absencetype.CreateAbsenceTypeRequest{
			Code: "CO",
			Name: "Concediu de odihna",
		})
		assert.ErrorIs(t, err, absencetypeerrors.ErrInvalidCompanyID)
	})
}

func TestAbsenceTypeService_Deactivate(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.redisMock.ExpectDel(absencetype.ActiveTypesCacheKey(companyID)).SetVal(1)

		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, aid string) (*absencetype.AbsenceType, error) {
			return &absencetype.AbsenceType{
				ID:        uuid.MustParse(aid),
				CompanyID: uuid.MustParse(cid),
				Code:      "CO",
				IsActive:  true,
			}, nil
		}

		var updated *absencetype.AbsenceType
		deps.repo.updateFn = func(ctx context.Context, at *absencetype.AbsenceType) error {
			updated = at
			return nil
		}

		err := deps.service.Deactivate(ctx, companyID, id)
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.False(t, updated.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupAbsenceTypeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		err := deps.service.Deactivate(ctx, companyID, id)
		assert.ErrorIs(t, err, absencetypeerrors.ErrAbsenceTypeNotFound)
	})
}
