package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// ComplaintsHandler manages complaint endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Submit POST /submit-complaint.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Некорректное тело запроса")
	}

	complaint, err := h.service.Submit(c.UserContext(), req.Complaint, req.Address)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Жалоба успешно создана",
		"data":    dto.NewComplaintResponse(complaint),
	})
}

// Create POST /complaints (raw create, bypasses enrichment).
func (h *ComplaintsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Некорректное тело запроса")
	}

	complaint, err := h.service.CreateRaw(c.UserContext(), service.ComplaintCreateInput{
		Complaint:        req.Complaint,
		Address:          req.Address,
		Category:         req.Category,
		Status:           req.Status,
		SeriousnessScore: req.SeriousnessScore,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Жалоба успешно создана",
		"data":    dto.NewComplaintResponse(complaint),
	})
}

// List GET /complaints.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	filter := service.ComplaintListFilter{
		TextContains:   c.Query("complaint_like"),
		Status:         c.Query("status"),
		Specialization: c.Query("specialization"),
	}
	complaints, err := h.service.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	items := make([]dto.ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		items = append(items, dto.NewComplaintResponse(&complaints[i]))
	}
	return c.JSON(fiber.Map{
		"message": "Жалобы успешно получены",
		"data":    items,
	})
}

// Update PATCH /complaints/:id.
func (h *ComplaintsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Некорректный формат ID жалобы")
	}

	var req dto.UpdateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Некорректное тело запроса")
	}

	patch := service.ComplaintPatch{
		Complaint:        req.Complaint,
		Category:         req.Category,
		Status:           req.Status,
		SeriousnessScore: req.SeriousnessScore,
	}
	if req.Address.Set {
		patch.Address = &req.Address.Value
	}

	complaint, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Жалоба успешно обновлена",
		"data":    dto.NewComplaintResponse(complaint),
	})
}

// Delete DELETE /complaints/:id.
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Некорректный формат ID жалобы")
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Жалоба успешно удалена"})
}

func parseID(val string) (int64, error) {
	return strconv.ParseInt(val, 10, 64)
}
