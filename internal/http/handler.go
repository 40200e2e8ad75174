package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "skill-share.com/skill-share/internal/errors"
	"skill-share.com/skill-share/internal/services"
)

type Handler struct {
	accountService *services.AccountService
	skillService   *services.SkillService
	taskService    *services.TaskService
	offerService   *services.OfferService
}

func NewHandler(
	accountService *services.AccountService,
	skillService *services.SkillService,
	taskService *services.TaskService,
	offerService *services.OfferService,
) *Handler {
	return &Handler{
		accountService: accountService,
		skillService:   skillService,
		taskService:    taskService,
		offerService:   offerService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return respond(c, http.StatusOK, echo.Map{"status": "ok"})
}

// bind decodes the JSON body into req and runs its validator.
func bind[T any](c echo.Context, req *T, validate func(*T) error) error {
	if err := c.Bind(req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	return validate(req)
}
