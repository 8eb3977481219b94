package catalog

import (
	"context"
	"errors"
	"fmt"

	"mobileexperts/internal/domain"

	"gorm.io/gorm"
)

// ServiceRepository is the catalog's view of repair-service storage.
type ServiceRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.RepairService, error)
	List(ctx context.Context, deviceType, issueType string) ([]domain.RepairService, error)
}

type Service struct {
	services ServiceRepository
}

func NewService(services ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) ListServices(ctx context.Context, deviceType, issueType string) ([]domain.RepairService, error) {
	return s.services.List(ctx, deviceType, issueType)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.RepairService, error) {
	svc, err := s.services.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

// Quote picks the matching catalog entry for a device/issue pair and turns
// it into the estimate shown before booking. The first active match wins;
// the seed keeps one service per (device, issue).
func (s *Service) Quote(ctx context.Context, deviceType, issueType string) (*QuoteResponse, error) {
	matches, err := s.services.List(ctx, deviceType, issueType)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrNoMatch
	}

	svc := matches[0]
	return &QuoteResponse{
		ServiceSlug:     svc.Slug,
		ServiceName:     svc.Name,
		PriceMin:        svc.PriceMin,
		PriceMax:        svc.PriceMax,
		DurationMinutes: svc.DurationMinutes,
		DurationLabel:   durationLabel(svc.DurationMinutes),
	}, nil
}

func durationLabel(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 60:
		return "1 hour"
	case minutes%60 == 0:
		return fmt.Sprintf("%d hours", minutes/60)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}
