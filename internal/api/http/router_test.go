package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/complaint-service/internal/api/http"
	"github.com/spec-kit/complaint-service/internal/api/http/handlers"
	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/observability"
	"github.com/spec-kit/complaint-service/internal/persistence"
	"github.com/spec-kit/complaint-service/internal/repository"
	"github.com/spec-kit/complaint-service/internal/service"
)

type fakeComplaintRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Complaint
}

func (r *fakeComplaintRepo) Create(_ context.Context, c *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	c.CreatedAt = time.Now().UTC()
	c.UpdatedAt = c.CreatedAt
	r.nextID++
	r.items[c.ID] = *c
	return nil
}

func (r *fakeComplaintRepo) Update(_ context.Context, c *domain.Complaint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[c.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.items[c.ID] = *c
	return nil
}

func (r *fakeComplaintRepo) GetByID(_ context.Context, id int64) (*domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &c, nil
}

func (r *fakeComplaintRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeComplaintRepo) ListWithFilter(_ context.Context, _ repository.ComplaintFilter) ([]domain.Complaint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.Complaint
	for _, c := range r.items {
		result = append(result, c)
	}
	return result, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
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

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *fakeUserRepo) GetByLogin(_ context.Context, login string) (*domain.User, error) {
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

type fixedClassifier struct{}

func (fixedClassifier) Classify(context.Context, string) domain.ComplaintCategory {
	return domain.CategoryHousing
}

type fixedRater struct{}

func (fixedRater) Rate(context.Context, string) (float64, bool) { return 7, true }

type fixedRecommender struct{}

func (fixedRecommender) Recommend(context.Context, string) string { return "1. Направить комиссию" }

func newTestApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()

	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: &fakeComplaintRepo{nextID: 1, items: map[int64]domain.Complaint{}},
		Classifier:    fixedClassifier{},
		Rater:         fixedRater{},
	})
	userService := service.NewUserService(&fakeUserRepo{nextID: 1, byID: map[int64]domain.User{}}, nil)
	recommendationService := service.NewRecommendationService(fixedRecommender{})

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler("test", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Complaints:      handlers.NewComplaintsHandler(complaintService),
		Users:           handlers.NewUsersHandler(userService),
		Recommendations: handlers.NewRecommendationHandler(recommendationService),
	})
	return app, metrics
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*stdhttp.Response, map[string]any) {
	t.Helper()
	var req *stdhttp.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestSubmitComplaintEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/submit-complaint", map[string]any{
		"complaint": "В доме нет отопления",
		"address":   "ул. Ленина 5",
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	require.Equal(t, "В доме нет отопления", data["complaint"])
	require.Equal(t, "ул. Ленина 5", data["address"])
	require.Equal(t, "housing", data["category"])
	require.Equal(t, "new", data["status"])
	require.Equal(t, 7.0, data["seriousnessScore"])
}

func TestSubmitComplaintMissingTextReturns400(t *testing.T) {
	app, metrics := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/submit-complaint", map[string]any{"address": "ул. Ленина 5"})
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Поле жалобы обязательно для заполнения", body["error"])

	// the request counter must see the mapped status, not a premature 200
	require.EqualValues(t, 1, metrics.RequestCount("/submit-complaint", stdhttp.MethodPost, stdhttp.StatusBadRequest))
	require.EqualValues(t, 0, metrics.RequestCount("/submit-complaint", stdhttp.MethodPost, stdhttp.StatusOK))
}

func TestPatchUnknownComplaintReturns404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodPatch, "/complaints/999", map[string]any{"status": "completed"})
	require.Equal(t, stdhttp.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Жалоба не найдена", body["error"])
}

func TestPatchComplaintNullAddressClearsIt(t *testing.T) {
	app, _ := newTestApp(t)

	_, body := doJSON(t, app, stdhttp.MethodPost, "/submit-complaint", map[string]any{
		"complaint": "В доме нет отопления",
		"address":   "ул. Ленина 5",
	})
	id := body["data"].(map[string]any)["id"].(float64)

	resp, body := doJSON(t, app, stdhttp.MethodPatch, fmt.Sprintf("/complaints/%.0f", id), map[string]any{
		"status": "in_progress",
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	require.Equal(t, "ул. Ленина 5", body["data"].(map[string]any)["address"])

	resp, body = doJSON(t, app, stdhttp.MethodPatch, fmt.Sprintf("/complaints/%.0f", id), map[string]any{
		"address": nil,
	})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	require.Nil(t, body["data"].(map[string]any)["address"])
}

func TestCreateUserStripsCredential(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/users", map[string]any{
		"login":          "inspector",
		"password":       "secret",
		"specialization": "ecology",
	})
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]any)
	require.Equal(t, "inspector", data["login"])
	require.Equal(t, "ecology", data["specialization"])
	require.NotContains(t, data, "password")
	require.NotContains(t, data, "passwordHash")
}

func TestDuplicateLoginReturns400(t *testing.T) {
	app, _ := newTestApp(t)

	payload := map[string]any{"login": "inspector", "password": "secret", "specialization": "ecology"}
	resp, _ := doJSON(t, app, stdhttp.MethodPost, "/users", payload)
	require.Equal(t, stdhttp.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/users", payload)
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Пользователь с таким логином уже существует", body["error"])
}

func TestGetUserMalformedIDReturns400(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodGet, "/users/not-a-number", nil)
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Некорректный формат ID пользователя", body["error"])
}

func TestRecommendationEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, stdhttp.MethodPost, "/recommendation", map[string]any{"complaint": "Во дворе свалка"})
	require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
	require.Equal(t, "1. Направить комиссию", body["data"])

	resp, body = doJSON(t, app, stdhttp.MethodPost, "/recommendation", map[string]any{})
	require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Поле жалобы обязательно для заполнения", body["error"])
}
