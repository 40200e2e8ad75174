package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "skill-share.com/skill-share/internal/data_models"
	middleware "skill-share.com/skill-share/internal/http/middlewares"
	"skill-share.com/skill-share/internal/http/validators"
)

func (h *Handler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := bind(c, &req, validators.ValidateCreateAccountRequest); err != nil {
		return err
	}

	resp, err := h.accountService.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, resp)
}

func (h *Handler) Authenticate(c echo.Context) error {
	var req dto.AuthenticateRequest
	if err := bind(c, &req, validators.ValidateAuthenticateRequest); err != nil {
		return err
	}

	resp, err := h.accountService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, resp)
}

func (h *Handler) CurrentAccount(c echo.Context) error {
	account, err := h.accountService.Get(c.Request().Context(), middleware.GetAccountID(c))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, account)
}
