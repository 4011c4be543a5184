package http

import (
	"net/http"

	mw "insurance-backend/internal/adapter/middleware"
	"insurance-backend/internal/usecase/renewal"

	"github.com/labstack/echo/v4"
)

type RenewalHandler struct{ uc *renewal.Usecase }

func NewRenewalHandler(uc *renewal.Usecase) *RenewalHandler { return &RenewalHandler{uc: uc} }

func (h *RenewalHandler) ListRenewable(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	rps, err := h.uc.ListRenewable(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, rps)
}

func (h *RenewalHandler) Renew(c echo.Context) error {
	userPolicyID, err := pathID(c, "user_policy_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user policy id"})
	}
	up, err := h.uc.Renew(c.Request().Context(), userPolicyID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, up)
}
