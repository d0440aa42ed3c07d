package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/complaint-service/internal/domain"
	"github.com/spec-kit/complaint-service/internal/events"
	"github.com/spec-kit/complaint-service/internal/repository"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintClassifier assigns a category label to complaint text.
type ComplaintClassifier interface {
	Classify(ctx context.Context, text string) domain.ComplaintCategory
}

// SeriousnessRater scores complaint text; ok is false when no score was
// obtained.
type SeriousnessRater interface {
	Rate(ctx context.Context, text string) (float64, bool)
}

// ComplaintService coordinates complaint intake and lifecycle workflows.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	classifier ComplaintClassifier
	rater      SeriousnessRater
	dispatcher events.Dispatcher
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Classifier    ComplaintClassifier
	Rater         SeriousnessRater
	Dispatcher    events.Dispatcher
}

// ComplaintCreateInput describes the raw create payload (bypasses enrichment).
type ComplaintCreateInput struct {
	Complaint        string
	Address          *string
	Category         domain.ComplaintCategory
	Status           domain.ComplaintStatus
	SeriousnessScore *float64
}

// ComplaintPatch describes a partial update; nil fields stay untouched.
// Address is doubly indirect so a present-but-nil value clears the stored
// address.
type ComplaintPatch struct {
	Complaint        *string
	Address          **string
	Category         *domain.ComplaintCategory
	Status           *domain.ComplaintStatus
	SeriousnessScore *float64
}

// ComplaintListFilter describes listing filters.
type ComplaintListFilter struct {
	TextContains   string
	Status         string
	Specialization string
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		classifier: deps.Classifier,
		rater:      deps.Rater,
		dispatcher: deps.Dispatcher,
	}
}

// Submit runs the intake pipeline: classify and rate the complaint text
// concurrently, then persist with status forced to "new". Enrichment failures
// never block persistence; the classifier falls back to "uncategorized" and an
// unknown rating persists the store default score.
func (s *ComplaintService) Submit(ctx context.Context, text string, address *string) (*domain.Complaint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.NewValidationError("Поле жалобы обязательно для заполнения")
	}

	var (
		wg       sync.WaitGroup
		category domain.ComplaintCategory
		score    float64
		scored   bool
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		category = s.classifier.Classify(ctx, text)
	}()
	go func() {
		defer wg.Done()
		score, scored = s.rater.Rate(ctx, text)
	}()
	wg.Wait()

	if !scored || score < 0 || score > 10 {
		score = domain.DefaultSeriousnessScore
	}

	complaint := &domain.Complaint{
		Complaint:        text,
		Address:          address,
		Category:         category,
		Status:           domain.ComplaintStatusNew,
		SeriousnessScore: score,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Payload: events.ComplaintCreatedPayload{
			Category:         complaint.Category,
			SeriousnessScore: complaint.SeriousnessScore,
			Enriched:         true,
		},
	})
	return complaint, nil
}

// CreateRaw persists a complaint without enrichment.
func (s *ComplaintService) CreateRaw(ctx context.Context, input ComplaintCreateInput) (*domain.Complaint, error) {
	text := strings.TrimSpace(input.Complaint)
	if text == "" {
		return nil, apperrors.NewValidationError("Поле жалобы обязательно для заполнения")
	}

	category := input.Category
	if category == "" {
		category = domain.CategoryUncategorized
	}
	if !category.IsValid() {
		return nil, apperrors.NewValidationError("Указана недопустимая категория")
	}

	status := input.Status
	if status == "" {
		status = domain.ComplaintStatusNew
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("Указан недопустимый статус")
	}

	score := domain.DefaultSeriousnessScore
	if input.SeriousnessScore != nil {
		score = *input.SeriousnessScore
	}
	if score < 0 || score > 10 {
		return nil, apperrors.NewValidationError("Оценка серьёзности должна быть от 0 до 10")
	}

	complaint := &domain.Complaint{
		Complaint:        text,
		Address:          input.Address,
		Category:         category,
		Status:           status,
		SeriousnessScore: score,
	}
	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Payload: events.ComplaintCreatedPayload{
			Category:         complaint.Category,
			SeriousnessScore: complaint.SeriousnessScore,
		},
	})
	return complaint, nil
}

// List returns complaints matching the conjunctive filter, newest first.
// A status of "все"/"vse" means no status filter.
func (s *ComplaintService) List(ctx context.Context, filter ComplaintListFilter) ([]domain.Complaint, error) {
	repoFilter := repository.ComplaintFilter{}
	if strings.TrimSpace(filter.TextContains) != "" {
		text := filter.TextContains
		repoFilter.TextContains = &text
	}
	status := strings.TrimSpace(filter.Status)
	if status != "" && status != "vse" && status != "все" {
		repoFilter.Status = &status
	}
	if spec := strings.TrimSpace(filter.Specialization); spec != "" {
		repoFilter.Category = &spec
	}
	return s.complaints.ListWithFilter(ctx, repoFilter)
}

// Get fetches one complaint by id.
func (s *ComplaintService) Get(ctx context.Context, id int64) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundComplaint(err)
	}
	return complaint, nil
}

// Update applies a partial field merge, re-validates the closed enumerations
// and returns the refreshed record.
func (s *ComplaintService) Update(ctx context.Context, id int64, patch ComplaintPatch) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundComplaint(err)
	}
	oldStatus := complaint.Status

	if patch.Complaint != nil {
		text := strings.TrimSpace(*patch.Complaint)
		if text == "" {
			return nil, apperrors.NewValidationError("Поле жалобы обязательно для заполнения")
		}
		complaint.Complaint = text
	}
	if patch.Address != nil {
		complaint.Address = *patch.Address
	}
	if patch.Category != nil {
		if !patch.Category.IsValid() {
			return nil, apperrors.NewValidationError("Указана недопустимая категория")
		}
		complaint.Category = *patch.Category
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return nil, apperrors.NewValidationError("Указан недопустимый статус")
		}
		complaint.Status = *patch.Status
	}
	if patch.SeriousnessScore != nil {
		if *patch.SeriousnessScore < 0 || *patch.SeriousnessScore > 10 {
			return nil, apperrors.NewValidationError("Оценка серьёзности должна быть от 0 до 10")
		}
		complaint.SeriousnessScore = *patch.SeriousnessScore
	}

	if err := s.complaints.Update(ctx, complaint); err != nil {
		return nil, notFoundComplaint(err)
	}

	if complaint.Status != oldStatus {
		s.publishEvent(ctx, events.Event{
			Type:        events.EventComplaintStatusChanged,
			ComplaintID: complaint.ID,
			Payload: events.ComplaintStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: complaint.Status,
			},
		})
	}
	return complaint, nil
}

// Delete removes a complaint by id.
func (s *ComplaintService) Delete(ctx context.Context, id int64) error {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		return notFoundComplaint(err)
	}
	if err := s.complaints.Delete(ctx, id); err != nil {
		return notFoundComplaint(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: id,
		Payload: events.ComplaintDeletedPayload{
			Category: complaint.Category,
			Status:   complaint.Status,
		},
	})
	return nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	_ = s.dispatcher.Publish(ctx, event)
}

func notFoundComplaint(err error) error {
	if apperrors.ToDomainError(err).HTTPStatus == 404 {
		return apperrors.NewNotFound("Жалоба не найдена")
	}
	return err
}
