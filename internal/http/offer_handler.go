package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"skill-share.com/skill-share/internal/constants"
	dto "skill-share.com/skill-share/internal/data_models"
	middleware "skill-share.com/skill-share/internal/http/middlewares"
	"skill-share.com/skill-share/internal/http/validators"
)

func (h *Handler) MakeOffer(c echo.Context) error {
	var req dto.MakeOfferRequest
	if err := bind(c, &req, validators.ValidateMakeOfferRequest); err != nil {
		return err
	}

	task, err := h.offerService.MakeOffer(c.Request().Context(), middleware.GetAccountID(c), req.TaskID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, task)
}

// GetOffers renders the list matching the caller's role.
func (h *Handler) GetOffers(c echo.Context) error {
	accountID, err := ownAccountParam(c)
	if err != nil {
		return err
	}

	view, err := h.offerService.GetOffersForAccount(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	if view.Role == constants.RoleProvider {
		return respond(c, http.StatusOK, view.ProviderOffers)
	}
	return respond(c, http.StatusOK, view.OwnerOffers)
}

func (h *Handler) AcceptOffer(c echo.Context) error {
	var req dto.AcceptOfferRequest
	if err := bind(c, &req, validators.ValidateAcceptOfferRequest); err != nil {
		return err
	}

	resp, err := h.offerService.AcceptOffer(c.Request().Context(), middleware.GetAccountID(c), req.ProviderID, req.TaskID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, resp)
}
