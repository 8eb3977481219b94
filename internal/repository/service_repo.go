package repository

import (
	"context"
	"encoding/json"
	"time"

	"mobileexperts/internal/domain"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

type repairServiceModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Slug            string    `gorm:"column:slug;uniqueIndex"`
	Description     string    `gorm:"column:description"`
	PriceMin        float64   `gorm:"column:price_min"`
	PriceMax        float64   `gorm:"column:price_max"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	DeviceType      string    `gorm:"column:device_type;index"`
	IssueType       string    `gorm:"column:issue_type;index"`
	Features        string    `gorm:"column:features"`
	IsActive        bool      `gorm:"column:is_active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (repairServiceModel) TableName() string { return "repair_services" }

func toDomainService(m repairServiceModel) *domain.RepairService {
	var features []string
	if m.Features != "" && m.Features != "[]" {
		_ = json.Unmarshal([]byte(m.Features), &features)
	}

	return &domain.RepairService{
		ID:              m.ID,
		Name:            m.Name,
		Slug:            m.Slug,
		Description:     m.Description,
		PriceMin:        m.PriceMin,
		PriceMax:        m.PriceMax,
		DurationMinutes: m.DurationMinutes,
		DeviceType:      domain.DeviceType(m.DeviceType),
		IssueType:       domain.IssueType(m.IssueType),
		Features:        features,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toServiceModel(s *domain.RepairService) repairServiceModel {
	features := "[]"
	if len(s.Features) > 0 {
		if data, err := json.Marshal(s.Features); err == nil {
			features = string(data)
		}
	}

	return repairServiceModel{
		ID:              s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Description:     s.Description,
		PriceMin:        s.PriceMin,
		PriceMax:        s.PriceMax,
		DurationMinutes: s.DurationMinutes,
		DeviceType:      string(s.DeviceType),
		IssueType:       string(s.IssueType),
		Features:        features,
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.RepairService) error {
	m := toServiceModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainService(m)
	return nil
}

func (r *ServiceRepository) GetBySlug(ctx context.Context, slug string) (*domain.RepairService, error) {
	var m repairServiceModel
	tx := r.db.WithContext(ctx).Where("slug = ? AND is_active = ?", slug, true).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainService(m), nil
}

func (r *ServiceRepository) List(ctx context.Context, deviceType, issueType string) ([]domain.RepairService, error) {
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if deviceType != "" {
		q = q.Where("device_type = ?", deviceType)
	}
	if issueType != "" {
		q = q.Where("issue_type = ?", issueType)
	}

	var models []repairServiceModel
	if tx := q.Order("name ASC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.RepairService, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainService(m))
	}
	return out, nil
}
