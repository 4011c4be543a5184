package http

import (
	"net/http"

	mw "insurance-backend/internal/adapter/middleware"
	"insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/usecase/support"

	"github.com/labstack/echo/v4"
)

type TicketHandler struct{ uc *support.Usecase }

func NewTicketHandler(uc *support.Usecase) *TicketHandler { return &TicketHandler{uc: uc} }

type createTicketReq struct {
	Subject     string  `json:"subject"     validate:"required"`
	Description string  `json:"description" validate:"required"`
	PolicyID    *uint64 `json:"policy_id"`
	ClaimID     *uint64 `json:"claim_id"`
}

func (h *TicketHandler) Create(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	var req createTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.Create(c.Request().Context(), support.CreateInput{
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		PolicyID:    req.PolicyID,
		ClaimID:     req.ClaimID,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TicketHandler) ListForUser(c echo.Context) error {
	userID, ok := mw.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	ts, err := h.uc.ListForUser(c.Request().Context(), userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *TicketHandler) Get(c echo.Context) error {
	ticketID, err := pathID(c, "ticket_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket id"})
	}
	t, err := h.uc.Get(c.Request().Context(), ticketID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) ListAll(c echo.Context) error {
	ts, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ts)
}

type updateTicketReq struct {
	Response string `json:"response"`
	Status   string `json:"status" validate:"required,oneof=OPEN RESOLVED CLOSED"`
}

func (h *TicketHandler) Update(c echo.Context) error {
	ticketID, err := pathID(c, "ticket_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket id"})
	}
	var req updateTicketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	t, err := h.uc.Update(c.Request().Context(), ticketID, req.Response, ticket.Status(req.Status))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) Delete(c echo.Context) error {
	ticketID, err := pathID(c, "ticket_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ticket id"})
	}
	if err := h.uc.Remove(c.Request().Context(), ticketID); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
