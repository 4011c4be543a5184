package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	mw "insurance-backend/internal/adapter/middleware"
	ticketDomain "insurance-backend/internal/domain/ticket"
	"insurance-backend/internal/domain/uow"
	"insurance-backend/internal/testutil/claimmock"
	"insurance-backend/internal/testutil/ticketmock"
	"insurance-backend/internal/testutil/uowmock"
	"insurance-backend/internal/testutil/userpolicymock"
	uc "insurance-backend/internal/usecase/support"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func newTicketHandler(tickets *ticketmock.Repo, ups *userpolicymock.Repo, cls *claimmock.Repo) *TicketHandler {
	tx := uowmock.New(uow.Repos{Tickets: tickets, UserPolicies: ups, Claims: cls})
	return NewTicketHandler(uc.NewUsecase(tickets, ups, cls, tx))
}

func TestCreateTicket_Created(t *testing.T) {
	e := newEchoWithValidator()

	tickets := &ticketmock.Repo{
		CreateFn: func(ctx context.Context, tk *ticketDomain.SupportTicket) error {
			tk.ID = 5
			return nil
		},
	}
	h := newTicketHandler(tickets, &userpolicymock.Repo{}, &claimmock.Repo{})

	reqBody := map[string]any{"subject": "billing", "description": "charged twice"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/tickets", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(mw.CtxUserID, uint64(42))

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var got ticketDomain.SupportTicket
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != ticketDomain.StatusOpen || got.UserID != 42 {
		t.Fatalf("unexpected ticket: %+v", got)
	}
}

func TestCreateTicket_ForeignClaimLinkForbidden(t *testing.T) {
	e := newEchoWithValidator()

	cls := &claimmock.Repo{
		ExistsByIDAndUserFn: func(context.Context, uint64, uint64) (bool, error) { return false, nil },
	}
	h := newTicketHandler(&ticketmock.Repo{}, &userpolicymock.Repo{}, cls)

	reqBody := map[string]any{"subject": "claim", "description": "status?", "claim_id": 11}
	req := httptest.NewRequest(stdhttp.MethodPost, "/tickets", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(mw.CtxUserID, uint64(42))

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

func TestCreateTicket_ValidationError(t *testing.T) {
	e := newEchoWithValidator()
	h := newTicketHandler(&ticketmock.Repo{}, &userpolicymock.Repo{}, &claimmock.Repo{})

	reqBody := map[string]any{"subject": "no description"}
	req := httptest.NewRequest(stdhttp.MethodPost, "/tickets", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(mw.CtxUserID, uint64(42))

	if err := h.Create(c); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}

func TestGetTicket_OK(t *testing.T) {
	e := newEchoWithValidator()

	tickets := &ticketmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
			return &ticketDomain.SupportTicket{ID: id, UserID: 42, Subject: "billing", Status: ticketDomain.StatusOpen}, nil
		},
	}
	h := newTicketHandler(tickets, &userpolicymock.Repo{}, &claimmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin/tickets/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ticket_id")
	c.SetParamValues("5")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got ticketDomain.SupportTicket
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.ID != 5 || got.Subject != "billing" {
		t.Fatalf("unexpected ticket: %+v", got)
	}
}

func TestGetTicket_NotFound(t *testing.T) {
	e := newEchoWithValidator()

	tickets := &ticketmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := newTicketHandler(tickets, &userpolicymock.Repo{}, &claimmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodGet, "/admin/tickets/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ticket_id")
	c.SetParamValues("99")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateTicket_OK(t *testing.T) {
	e := newEchoWithValidator()

	tickets := &ticketmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
			return &ticketDomain.SupportTicket{ID: id, Status: ticketDomain.StatusOpen}, nil
		},
	}
	h := newTicketHandler(tickets, &userpolicymock.Repo{}, &claimmock.Repo{})

	reqBody := map[string]any{"response": "refund issued", "status": "RESOLVED"}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/admin/tickets/5", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ticket_id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got ticketDomain.SupportTicket
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if got.Status != ticketDomain.StatusResolved || got.ResolvedAt == nil {
		t.Fatalf("unexpected ticket: %+v", got)
	}
}

func TestUpdateTicket_ClosedRejected(t *testing.T) {
	e := newEchoWithValidator()

	tickets := &ticketmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*ticketDomain.SupportTicket, error) {
			return &ticketDomain.SupportTicket{ID: id, Status: ticketDomain.StatusClosed}, nil
		},
	}
	h := newTicketHandler(tickets, &userpolicymock.Repo{}, &claimmock.Repo{})

	reqBody := map[string]any{"status": "OPEN"}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/admin/tickets/5", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ticket_id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateTicket_BadStatusValue(t *testing.T) {
	e := newEchoWithValidator()
	h := newTicketHandler(&ticketmock.Repo{}, &userpolicymock.Repo{}, &claimmock.Repo{})

	reqBody := map[string]any{"status": "ARCHIVED"}
	req := httptest.NewRequest(stdhttp.MethodPatch, "/admin/tickets/5", mustJSON(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ticket_id")
	c.SetParamValues("5")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
}
