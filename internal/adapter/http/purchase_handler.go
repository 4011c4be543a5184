package http

import (
	"net/http"

	mw "insurance-backend/internal/adapter/middleware"
	"insurance-backend/internal/domain/userpolicy"
	"insurance-backend/internal/usecase/purchase"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct{ uc *purchase.Usecase }

func NewPurchaseHandler(uc *purchase.Usecase) *PurchaseHandler { return &PurchaseHandler{uc: uc} }

func (h *PurchaseHandler) Purchase(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	policyID, err := pathID(c, "policy_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid policy id"})
	}
	up, err := h.uc.Purchase(c.Request().Context(), policyID, userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, up)
}

func (h *PurchaseHandler) ListPurchased(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	ups, err := h.uc.ListPurchased(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ups)
}

type updateStatusReq struct {
	PolicyID uint64 `json:"policy_id" validate:"required"`
	Status   string `json:"status"    validate:"required,oneof=ACTIVE EXPIRED CANCELLED RENEWED"`
}

func (h *PurchaseHandler) UpdateStatus(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	up, err := h.uc.UpdateStatus(c.Request().Context(), req.PolicyID, userID, userpolicy.Status(req.Status))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, up)
}
