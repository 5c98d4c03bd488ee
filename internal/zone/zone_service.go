package zone

import (
	"context"
	"errors"

	zoneerrors "go-pontaj/internal/zone/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=zone_service.go -destination=mock/zone_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateZoneRequest) (*ZoneResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateZoneRequest) (*ZoneResponse, error)
	GetByID(ctx context.Context, companyID, id string) (*ZoneResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ZoneResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("zone.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("zone.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateZoneRequest) (*ZoneResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, zoneerrors.ErrInvalidCompanyID
	}

	if _, err := s.repo.FindByNameAndCompany(ctx, companyID, req.Name); err == nil {
		return nil, zoneerrors.ErrDuplicateName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	z := &Zone{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      req.Name,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, z); err != nil {
		s.logger.Error("create zone failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("zone created", zap.String("zone_id", z.ID.String()), zap.String("name", z.Name))
	return mapToResponse(z), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateZoneRequest) (*ZoneResponse, error) {
	z, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, zoneerrors.ErrZoneNotFound
		}
		return nil, err
	}

	if req.Name != nil && *req.Name != z.Name {
		if _, err := s.repo.FindByNameAndCompany(ctx, companyID, *req.Name); err == nil {
			return nil, zoneerrors.ErrDuplicateName
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		z.Name = *req.Name
	}
	if req.IsActive != nil {
		z.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, z); err != nil {
		return nil, err
	}
	return mapToResponse(z), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (*ZoneResponse, error) {
	z, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, zoneerrors.ErrZoneNotFound
		}
		return nil, err
	}
	return mapToResponse(z), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ZoneResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]ZoneResponse, len(rows))
	for i := range rows {
		out[i] = *mapToResponse(&rows[i])
	}
	return out, nil
}
