package repository

import (
	"context"

	"mobileexperts/internal/domain"

	"gorm.io/gorm"
)

// CalendarRepository loads the weekly hours table and blackout overrides.
// The schedule module reads this once at startup; edits require a restart.
type CalendarRepository interface {
	LoadWeek(ctx context.Context) ([]domain.WeekdayHours, error)
	LoadBlackouts(ctx context.Context) ([]domain.BlackoutDate, error)
	SaveWeek(ctx context.Context, week []domain.WeekdayHours) error
	AddBlackout(ctx context.Context, bd *domain.BlackoutDate) error
}

type calendarRepository struct {
	db *gorm.DB
}

func NewCalendarRepository(db *gorm.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

type weekdayHoursModel struct {
	ID       int64 `gorm:"column:id;primaryKey"`
	Weekday  int   `gorm:"column:weekday;uniqueIndex"`
	OpensAt  int   `gorm:"column:opens_at"`
	ClosesAt int   `gorm:"column:closes_at"`
	IsClosed bool  `gorm:"column:is_closed"`
}

func (weekdayHoursModel) TableName() string { return "weekday_hours" }

type blackoutDateModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Date     string `gorm:"column:date;uniqueIndex"`
	FullDay  bool   `gorm:"column:full_day"`
	OpensAt  *int   `gorm:"column:opens_at"`
	ClosesAt *int   `gorm:"column:closes_at"`
	Reason   string `gorm:"column:reason"`
}

func (blackoutDateModel) TableName() string { return "blackout_dates" }

// LoadWeek falls back to the standing default schedule when the table has
// never been seeded.
func (r *calendarRepository) LoadWeek(ctx context.Context) ([]domain.WeekdayHours, error) {
	var models []weekdayHoursModel
	if tx := r.db.WithContext(ctx).Order("weekday ASC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	if len(models) == 0 {
		return domain.DefaultWeekHours(), nil
	}

	out := make([]domain.WeekdayHours, 0, len(models))
	for _, m := range models {
		out = append(out, domain.WeekdayHours{
			ID:       m.ID,
			Weekday:  m.Weekday,
			OpensAt:  m.OpensAt,
			ClosesAt: m.ClosesAt,
			IsClosed: m.IsClosed,
		})
	}
	return out, nil
}

func (r *calendarRepository) LoadBlackouts(ctx context.Context) ([]domain.BlackoutDate, error) {
	var models []blackoutDateModel
	if tx := r.db.WithContext(ctx).Order("date ASC").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BlackoutDate, 0, len(models))
	for _, m := range models {
		out = append(out, domain.BlackoutDate{
			ID:       m.ID,
			Date:     m.Date,
			FullDay:  m.FullDay,
			OpensAt:  m.OpensAt,
			ClosesAt: m.ClosesAt,
			Reason:   m.Reason,
		})
	}
	return out, nil
}

func (r *calendarRepository) SaveWeek(ctx context.Context, week []domain.WeekdayHours) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM weekday_hours").Error; err != nil {
			return err
		}
		for _, wh := range week {
			m := weekdayHoursModel{
				Weekday:  wh.Weekday,
				OpensAt:  wh.OpensAt,
				ClosesAt: wh.ClosesAt,
				IsClosed: wh.IsClosed,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *calendarRepository) AddBlackout(ctx context.Context, bd *domain.BlackoutDate) error {
	m := blackoutDateModel{
		Date:     bd.Date,
		FullDay:  bd.FullDay,
		OpensAt:  bd.OpensAt,
		ClosesAt: bd.ClosesAt,
		Reason:   bd.Reason,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	bd.ID = m.ID
	return nil
}
