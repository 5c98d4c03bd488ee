package store

import (
	"context"
	"database/sql"
	"errors"

	storeerrors "go-pontaj/internal/store/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=store_service.go -destination=mock/store_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateStoreRequest) (*StoreResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateStoreRequest) (*StoreResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
	GetByID(ctx context.Context, companyID, id string) (*StoreResponse, error)
	GetAll(ctx context.Context, companyID string, activeOnly bool) ([]StoreResponse, error)
	GetByZone(ctx context.Context, companyID, zoneID string) ([]StoreResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("store.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateStoreRequest) (*StoreResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, storeerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByCodeAndCompany(ctx, companyID, req.Code); err == nil {
		return nil, storeerrors.ErrDuplicateCode
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	store := &Store{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
		Code:      req.Code,
		Address:   req.Address,
		IsActive:  true,
	}
	if req.ZoneID != "" {
		zoneUUID, err := uuid.Parse(req.ZoneID)
		if err != nil {
			return nil, storeerrors.ErrInvalidZoneID
		}
		store.ZoneID = &zoneUUID
	}

	if err := qtx.Create(ctx, store); err != nil {
		s.logger.Error("create store failed", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("store created",
		zap.String("store_id", store.ID.String()),
		zap.String("company_id", companyID),
		zap.String("code", store.Code),
	)
	return mapToResponse(store), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateStoreRequest) (*StoreResponse, error) {
	store, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeerrors.ErrStoreNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.ZoneID != nil {
		if *req.ZoneID == "" {
			store.ZoneID = nil
		} else {
			zoneUUID, err := uuid.Parse(*req.ZoneID)
			if err != nil {
				return nil, storeerrors.ErrInvalidZoneID
			}
			store.ZoneID = &zoneUUID
		}
	}
	if req.Address != nil {
		store.Address = *req.Address
	}
	if req.IsActive != nil {
		store.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, store); err != nil {
		s.logger.Error("update store failed", zap.String("store_id", id), zap.Error(err))
		return nil, err
	}
	return mapToResponse(store), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	store, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return storeerrors.ErrStoreNotFound
		}
		return err
	}

	store.IsActive = false
	if err := s.repo.Update(ctx, store); err != nil {
		return err
	}

	s.logger.Info("store deactivated", zap.String("store_id", id))
	return nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*StoreResponse, error) {
	store, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storeerrors.ErrStoreNotFound
		}
		return nil, err
	}
	return mapToResponse(store), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, activeOnly bool) ([]StoreResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func (s *service) GetByZone(ctx context.Context, companyID, zoneID string) ([]StoreResponse, error) {
	if _, err := uuid.Parse(zoneID); err != nil {
		return nil, storeerrors.ErrInvalidZoneID
	}
	rows, err := s.repo.FindAllByZone(ctx, companyID, zoneID)
	if err != nil {
		return nil, err
	}
	return mapList(rows), nil
}

func mapList(rows []Store) []StoreResponse {
	out := make([]StoreResponse, len(rows))
	for i := range rows {
		out[i] = *mapToResponse(&rows[i])
	}
	return out
}
