package http

import (
	"net/http"

	mw "insurance-backend/internal/adapter/middleware"
	"insurance-backend/internal/usecase/claims"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *claims.Usecase }

func NewClaimHandler(uc *claims.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type submitClaimReq struct {
	UserPolicyID uint64  `json:"user_policy_id" validate:"required"`
	ClaimAmount  float64 `json:"claim_amount"   validate:"required,gt=0,dec2"`
	Reason       string  `json:"reason"         validate:"required"`
}

func (h *ClaimHandler) Submit(c echo.Context) error {
	var req submitClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	cl, err := h.uc.Submit(c.Request().Context(), claims.SubmitInput{
		UserPolicyID: req.UserPolicyID,
		ClaimAmount:  req.ClaimAmount,
		Reason:       req.Reason,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, cl)
}

func (h *ClaimHandler) ListForUser(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	cs, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cs)
}

func (h *ClaimHandler) ListAll(c echo.Context) error {
	cs, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cs)
}

type adjudicateReq struct {
	Status          string `json:"status"           validate:"required"`
	ReviewerComment string `json:"reviewer_comment"`
}

func (h *ClaimHandler) Adjudicate(c echo.Context) error {
	claimID, err := pathID(c, "claim_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	var req adjudicateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	cl, err := h.uc.Adjudicate(c.Request().Context(), claimID, req.Status, req.ReviewerComment)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, cl)
}

func (h *ClaimHandler) Delete(c echo.Context) error {
	claimID, err := pathID(c, "claim_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim id"})
	}
	if err := h.uc.Remove(c.Request().Context(), claimID); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
