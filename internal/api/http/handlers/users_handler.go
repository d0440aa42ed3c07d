package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/complaint-service/internal/api/dto"
	"github.com/spec-kit/complaint-service/internal/service"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

// UsersHandler exposes the specialist registry endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Create POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("Некорректное тело запроса")
	}

	user, err := h.users.Register(c.UserContext(), req.Login, req.Password, req.Specialization)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Пользователь успешно создан",
		"data":    dto.NewUserResponse(user),
	})
}

// GetByLogin GET /users/login/:login.
func (h *UsersHandler) GetByLogin(c *fiber.Ctx) error {
	login := c.Params("login")
	if login == "" {
		return apperrors.NewValidationError("Необходимо указать логин пользователя")
	}

	user, err := h.users.GetByLogin(c.UserContext(), login)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Пользователь успешно найден",
		"data":    dto.NewUserResponse(user),
	})
}

// GetByID GET /users/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return apperrors.NewValidationError("Некорректный формат ID пользователя")
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Пользователь успешно найден",
		"data":    dto.NewUserResponse(user),
	})
}
