package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "skill-share.com/skill-share/internal/data_models"
	middleware "skill-share.com/skill-share/internal/http/middlewares"
	"skill-share.com/skill-share/internal/http/validators"
)

func (h *Handler) AddOrUpdateSkill(c echo.Context) error {
	var req dto.AddUpdateSkillRequest
	if err := bind(c, &req, validators.ValidateAddUpdateSkillRequest); err != nil {
		return err
	}

	resp, err := h.skillService.AddOrUpdate(c.Request().Context(), middleware.GetAccountID(c), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, resp)
}

func (h *Handler) GetSkills(c echo.Context) error {
	var req dto.GetSkillsRequest
	if err := bind(c, &req, validators.ValidateGetSkillsRequest); err != nil {
		return err
	}

	skills, err := h.skillService.GetSkills(c.Request().Context(), req.AccountID)
	if err != nil {
		return err
	}

	summaries := make([]dto.SkillSummary, 0, len(skills))
	for _, s := range skills {
		summaries = append(summaries, dto.NewSkillSummary(s))
	}
	return respond(c, http.StatusOK, summaries)
}
