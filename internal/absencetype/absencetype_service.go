package absencetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	absencetypeerrors "go-pontaj/internal/absencetype/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	activeTypesKeyPrefix = "absence_types:active:"
	activeTypesCacheTTL  = 5 * time.Minute
)

func ActiveTypesCacheKey(companyID string) string {
	return activeTypesKeyPrefix + companyID
}

//go:generate mockgen -source=absencetype_service.go -destination=mock/absencetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateAbsenceTypeRequest) (AbsenceTypeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]AbsenceTypeResponse, error)
	GetActive(ctx context.Context, companyID string) ([]AbsenceTypeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AbsenceTypeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAbsenceTypeRequest) (AbsenceTypeResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("absencetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("absencetype.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateAbsenceTypeRequest) (AbsenceTypeResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AbsenceTypeResponse{}, absencetypeerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	existing, err := qtx.FindByCodeAndCompany(ctx, companyID, req.Code)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AbsenceTypeResponse{}, err
	}
	if err == nil && existing != nil && existing.IsActive {
		return AbsenceTypeResponse{}, absencetypeerrors.ErrDuplicateCode
	}

	at := &AbsenceType{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		Code:          req.Code,
		Name:          req.Name,
		RequiresHours: req.RequiresHours,
		ColorClass:    req.ColorClass,
		SortOrder:     req.SortOrder,
		IsActive:      true,
	}

	if err := qtx.Create(ctx, at); err != nil {
		return AbsenceTypeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceTypeResponse{}, err
	}

	s.invalidateActiveCache(ctx, companyID)
	s.logger.Info("absence type created",
		zap.String("company_id", companyID),
		zap.String("code", at.Code),
	)
	return mapToResponse(*at), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]AbsenceTypeResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// GetActive serves the catalog snapshot every grid operation depends on.
// Redis holds the hot copy; singleflight collapses concurrent misses into
// one database read.
func (s *service) GetActive(ctx context.Context, companyID string) ([]AbsenceTypeResponse, error) {
	cacheKey := ActiveTypesCacheKey(companyID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []AbsenceTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	result, err, _ := s.sf.Do(cacheKey, func() (any, error) {
		rows, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}
		resp := mapToListResponse(rows)

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, payload, activeTypesCacheTTL).Err(); err != nil {
					s.logger.Warn("cache absence types failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]AbsenceTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AbsenceTypeResponse, error) {
	at, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AbsenceTypeResponse{}, absencetypeerrors.ErrAbsenceTypeNotFound
		}
		return AbsenceTypeResponse{}, err
	}
	return mapToResponse(*at), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAbsenceTypeRequest) (AbsenceTypeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AbsenceTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	at, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AbsenceTypeResponse{}, absencetypeerrors.ErrAbsenceTypeNotFound
		}
		return AbsenceTypeResponse{}, err
	}

	at.Name = req.Name
	at.RequiresHours = req.RequiresHours
	at.ColorClass = req.ColorClass
	at.SortOrder = req.SortOrder
	at.IsActive = req.IsActive

	if err := qtx.Update(ctx, at); err != nil {
		return AbsenceTypeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AbsenceTypeResponse{}, err
	}

	s.invalidateActiveCache(ctx, companyID)
	return mapToResponse(*at), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	at, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return absencetypeerrors.ErrAbsenceTypeNotFound
		}
		return err
	}

	at.IsActive = false
	if err := qtx.Update(ctx, at); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateActiveCache(ctx, companyID)
	return nil
}

func (s *service) invalidateActiveCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveTypesCacheKey(companyID)).Err(); err != nil {
		s.logger.Warn("invalidate absence types cache failed",
			zap.String("company_id", companyID),
			zap.Error(err),
		)
	}
}

func mapToResponse(at AbsenceType) AbsenceTypeResponse {
	return AbsenceTypeResponse{
		ID:            at.ID.String(),
		CompanyID:     at.CompanyID.String(),
		Code:          at.Code,
		Name:          at.Name,
		RequiresHours: at.RequiresHours,
		ColorClass:    at.ColorClass,
		SortOrder:     at.SortOrder,
		IsActive:      at.IsActive,
	}
}

func mapToListResponse(rows []AbsenceType) []AbsenceTypeResponse {
	resp := make([]AbsenceTypeResponse, len(rows))
	for i, at := range rows {
		resp[i] = mapToResponse(at)
	}
	return resp
}
