package domain

import "time"

type DeviceType string

const (
	DevicePhone  DeviceType = "phone"
	DeviceTablet DeviceType = "tablet"
	DeviceLaptop DeviceType = "laptop"
	DeviceWatch  DeviceType = "watch"
)

type IssueType string

const (
	IssueScreen      IssueType = "screen"
	IssueBattery     IssueType = "battery"
	IssueWaterDamage IssueType = "water_damage"
	IssueCharging    IssueType = "charging"
	IssueCamera      IssueType = "camera"
	IssueSoftware    IssueType = "software"
	IssueOther       IssueType = "other"
)

// RepairService is one entry of the shop's service menu. DurationMinutes
// feeds the scheduler; PriceMin/PriceMax render as an estimate range.
type RepairService struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name" validate:"required"`
	Slug            string     `json:"slug" validate:"required" gorm:"uniqueIndex"`
	Description     string     `json:"description,omitempty"`
	PriceMin        float64    `json:"price_min" validate:"gte=0"`
	PriceMax        float64    `json:"price_max" validate:"gte=0"`
	DurationMinutes int        `json:"duration_minutes" validate:"gt=0"`
	DeviceType      DeviceType `json:"device_type"`
	IssueType       IssueType  `json:"issue_type"`
	Features        []string   `json:"features,omitempty" gorm:"serializer:json"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
