package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// UserService coordinates specialist account registration and lookup.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, dispatcher events.Dispatcher) *UserService {
	return &UserService{users: users, dispatcher: dispatcher}
}

// Register creates a specialist account. The credential is stored as a bcrypt
// hash, never in the clear.
func (s *UserService) Register(ctx context.Context, login, password string, specialization domain.Specialization) (*domain.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" || specialization == "" {
		return nil, apperrors.NewValidationError("Необходимо указать логин, пароль и специализацию")
	}
	if !specialization.IsValid() {
		return nil, apperrors.NewValidationError("Указана недопустимая специализация")
	}

	if _, err := s.users.GetByLogin(ctx, login); err == nil {
		return nil, apperrors.NewDuplicateLogin("Пользователь с таким логином уже существует")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Login:          login,
		PasswordHash:   hash,
		Specialization: specialization,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateLogin) {
			return nil, apperrors.NewDuplicateLogin("Пользователь с таким логином уже существует")
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventUserRegistered,
			Timestamp: time.Now().UTC(),
			Payload: events.UserRegisteredPayload{
				UserID:         user.ID,
				Specialization: user.Specialization,
			},
		})
	}
	return user, nil
}

// GetByLogin fetches a specialist by login.
func (s *UserService) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		return nil, notFoundUser(err)
	}
	return user, nil
}

// GetByID fetches a specialist by id.
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundUser(err)
	}
	return user, nil
}

func notFoundUser(err error) error {
	if apperrors.ToDomainError(err).HTTPStatus == 404 {
		return apperrors.NewNotFound("Пользователь не найден")
	}
	return err
}
