package admin

import (
	"context"
	"errors"
	"time"

	"mobileexperts/internal/domain"
	jwtsvc "mobileexperts/internal/pkg/jwt"
	"mobileexperts/internal/pkg/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository is the login stub's view of user storage.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// CalendarStore persists blackout dates. Changes take effect on the next
// process start; the in-memory calendar stays immutable for the process
// lifetime.
type CalendarStore interface {
	LoadWeek(ctx context.Context) ([]domain.WeekdayHours, error)
	AddBlackout(ctx context.Context, bd *domain.BlackoutDate) error
}

type Service struct {
	users    UserRepository
	calendar CalendarStore
	tokens   *jwtsvc.Service
}

func NewService(users UserRepository, calendar CalendarStore, tokens *jwtsvc.Service) *Service {
	return &Service{users: users, calendar: calendar, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if u.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}

	token, err := s.tokens.GenerateToken(u.ID, u.Email, string(u.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Name: u.Name, Role: string(u.Role)}, nil
}

func (s *Service) WeekHours(ctx context.Context) ([]domain.WeekdayHours, error) {
	return s.calendar.LoadWeek(ctx)
}

func (s *Service) AddBlackout(ctx context.Context, req AddBlackoutRequest) (*domain.BlackoutDate, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, err
	}
	bd := &domain.BlackoutDate{
		Date:     req.Date,
		FullDay:  req.FullDay,
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
		Reason:   req.Reason,
	}
	if fields := validator.Validate(bd); fields != nil {
		return nil, validator.Error(fields)
	}
	if err := s.calendar.AddBlackout(ctx, bd); err != nil {
		return nil, err
	}
	return bd, nil
}
