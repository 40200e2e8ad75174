package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "skill-share.com/skill-share/internal/data_models"
	apperrors "skill-share.com/skill-share/internal/errors"
	middleware "skill-share.com/skill-share/internal/http/middlewares"
	"skill-share.com/skill-share/internal/http/validators"
	"skill-share.com/skill-share/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bind(c, &req, validators.ValidateCreateTaskRequest); err != nil {
		return err
	}
	start, err := validators.ParseDate(req.ExpectedStartDate)
	if err != nil {
		return err
	}

	resp, err := h.taskService.CreateTask(c.Request().Context(), middleware.GetAccountID(c), services.TaskInput{
		Category:             req.Category,
		Name:                 req.Name,
		Description:          req.Description,
		ExpectedStartDate:    start,
		ExpectedWorkingHours: req.ExpectedWorkingHours,
		HourlyRate:           req.HourlyRate,
		RateCurrency:         req.RateCurrency,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, resp)
}

func (h *Handler) GetTasks(c echo.Context) error {
	accountID, err := ownAccountParam(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.GetTasksForAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tasks)
}

func (h *Handler) UpdateProgress(c echo.Context) error {
	var req dto.UpdateProgressRequest
	if err := bind(c, &req, validators.ValidateUpdateProgressRequest); err != nil {
		return err
	}

	resp, err := h.taskService.UpdateProgress(c.Request().Context(), middleware.GetAccountID(c), req.TaskID, req.Description)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, resp)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	var req dto.UpdateStatusRequest
	if err := bind(c, &req, validators.ValidateUpdateStatusRequest); err != nil {
		return err
	}

	resp, err := h.taskService.UpdateStatus(c.Request().Context(), middleware.GetAccountID(c), req.TaskID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, resp)
}

// ownAccountParam returns the :accountId path parameter, which must name
// the authenticated caller.
func ownAccountParam(c echo.Context) (string, error) {
	accountID := c.Param("accountId")
	if accountID == "" {
		return "", apperrors.Validation("accountId is required")
	}
	if accountID != middleware.GetAccountID(c) {
		return "", apperrors.ErrForbidden
	}
	return accountID, nil
}
