package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/auth"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/repository"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

type memoryUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, byID: map[int64]domain.User{}}
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Login == user.Login {
			return repository.ErrDuplicateLogin
		}
	}
	user.ID = r.nextID
	r.nextID++
	r.byID[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *memoryUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Login == login {
			u := user
			return &u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := service.NewUserService(repo, nil)

	user, err := svc.Register(context.Background(), "inspector", "secret-pass", domain.SpecializationHousing)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.NotEqual(t, "secret-pass", user.PasswordHash)
	require.NoError(t, auth.ComparePassword(user.PasswordHash, "secret-pass"))
	require.Error(t, auth.ComparePassword(user.PasswordHash, "wrong-pass"))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := service.NewUserService(repo, nil)

	cases := []struct {
		login, password string
		spec            domain.Specialization
	}{
		{"", "pass", domain.SpecializationHousing},
		{"login", "", domain.SpecializationHousing},
		{"login", "pass", ""},
	}
	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.login, tc.password, tc.spec)
		require.Error(t, err)
		require.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
	}
}

func TestRegisterRejectsInvalidSpecialization(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := service.NewUserService(repo, nil)

	for _, spec := range []domain.Specialization{"other", "uncategorized", "plumbing"} {
		_, err := svc.Register(context.Background(), "inspector", "pass", spec)
		require.Error(t, err)
		require.Equal(t, "Указана недопустимая специализация", apperrors.ToDomainError(err).Message)
	}
}

func TestRegisterDuplicateLoginKeepsExistingRecord(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := service.NewUserService(repo, nil)

	first, err := svc.Register(context.Background(), "inspector", "pass-one", domain.SpecializationEcology)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "inspector", "pass-two", domain.SpecializationPolice)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, "DUPLICATE_LOGIN", domainErr.Code)
	require.Equal(t, 400, domainErr.HTTPStatus)

	existing, err := svc.GetByLogin(context.Background(), "inspector")
	require.NoError(t, err)
	require.Equal(t, first.ID, existing.ID)
	require.Equal(t, domain.SpecializationEcology, existing.Specialization)
	require.Equal(t, first.PasswordHash, existing.PasswordHash)
}

func TestGetUnknownUserReturnsNotFound(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := service.NewUserService(repo, nil)

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, 404, domainErr.HTTPStatus)
	require.Equal(t, "Пользователь не найден", domainErr.Message)

	_, err = svc.GetByLogin(context.Background(), "ghost")
	require.Error(t, err)
	require.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
}
