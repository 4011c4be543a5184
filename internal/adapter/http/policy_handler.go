package http

import (
	"net/http"
	"strconv"

	catalogDomain "insurance-backend/internal/domain/catalog"
	"insurance-backend/internal/usecase/catalog"

	"github.com/labstack/echo/v4"
)

type PolicyHandler struct{ uc *catalog.Usecase }

func NewPolicyHandler(uc *catalog.Usecase) *PolicyHandler { return &PolicyHandler{uc: uc} }

type policyReq struct {
	Name               string  `json:"name"                 validate:"required"`
	Description        string  `json:"description"`
	PremiumAmount      float64 `json:"premium_amount"       validate:"required,gt=0,dec2"`
	CoverageAmount     float64 `json:"coverage_amount"      validate:"required,gt=0,dec2"`
	DurationMonths     int     `json:"duration_months"      validate:"required,gt=0"`
	RenewalPremiumRate float64 `json:"renewal_premium_rate" validate:"required,gt=0,dec2"`
	Category           string  `json:"category"             validate:"required,oneof=LIFE HEALTH VEHICLE"`
}

func (h *PolicyHandler) bindPolicy(c echo.Context) (*policyReq, error) {
	var req policyReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return &req, nil
}

func (req *policyReq) toInput() catalog.PolicyInput {
	return catalog.PolicyInput{
		Name:               req.Name,
		Description:        req.Description,
		PremiumAmount:      req.PremiumAmount,
		CoverageAmount:     req.CoverageAmount,
		DurationMonths:     req.DurationMonths,
		RenewalPremiumRate: req.RenewalPremiumRate,
		Category:           catalogDomain.Category(req.Category),
	}
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func (h *PolicyHandler) Create(c echo.Context) error {
	req, err := h.bindPolicy(c)
	if req == nil {
		return err
	}
	p, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PolicyHandler) List(c echo.Context) error {
	ps, err := h.uc.List(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, ps)
}

func (h *PolicyHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid policy id"})
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PolicyHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid policy id"})
	}
	req, errResp := h.bindPolicy(c)
	if req == nil {
		return errResp
	}
	p, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PolicyHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid policy id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
