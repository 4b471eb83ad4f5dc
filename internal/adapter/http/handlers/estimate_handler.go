package handlers

import (
	"errors"
	"net/http"

	"coolseason/internal/adapter/http/dto/request"
	"coolseason/internal/adapter/http/dto/response"
	"coolseason/internal/domain/entities"
	"coolseason/internal/infrastructure/render"
	"coolseason/internal/usecase"
	"coolseason/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler exposes the estimate lifecycle: the current working
// estimate, the estimates list, systems, options and add-ons.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	estimates, err := h.usecase.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateList(estimates))
}

func (h *EstimateHandler) StartNewEstimate(c *gin.Context) {
	estimate, err := h.usecase.StartNew(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetCurrentEstimate(c *gin.Context) {
	estimate, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// LoadEstimate switches the current working estimate to the requested one.
func (h *EstimateHandler) LoadEstimate(c *gin.Context) {
	var payload request.LoadEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.Load(c.Request.Context(), payload.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	estimate, err := h.usecase.Delete(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	// The body carries the estimate that became current after the delete.
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.UpdateCustomer(c.Request.Context(), payload.ToUpdate())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.SetStatus(c.Request.Context(), entities.EstimateStatus(payload.Status))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateSignature(c *gin.Context) {
	var payload request.SignatureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.UpdateSignature(c.Request.Context(), payload.Signature)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// AcceptProposal selects the given tier across enabled systems and marks
// the estimate approved.
func (h *EstimateHandler) AcceptProposal(c *gin.Context) {
	var payload request.AcceptProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.AcceptProposal(c.Request.Context(), entities.Tier(payload.Tier))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// GetTextSummary returns the shareable plain-text summary.
func (h *EstimateHandler) GetTextSummary(c *gin.Context) {
	summary, err := h.usecase.TextSummary(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.String(http.StatusOK, summary)
}

// GetPDFSummary renders the current estimate as a PDF document.
func (h *EstimateHandler) GetPDFSummary(c *gin.Context) {
	estimate, err := h.usecase.Current(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	pdf, err := render.EstimatePDF(estimate)
	if err != nil {
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Could not render the estimate PDF", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", "inline; filename=\"estimate-"+estimate.EstimateNumber+".pdf\"")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *EstimateHandler) AddSystem(c *gin.Context) {
	var payload request.AddSystemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.AddSystem(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) RemoveSystem(c *gin.Context) {
	estimate, err := h.usecase.RemoveSystem(c.Request.Context(), c.Param("system_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) EnsureSystemCount(c *gin.Context) {
	var payload request.SystemCountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.EnsureSystemCount(c.Request.Context(), payload.Count)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) UpdateSystemMeta(c *gin.Context) {
	var payload request.SystemMetaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.UpdateSystemMeta(c.Request.Context(), c.Param("system_id"), payload.ToUpdate())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SetSystemEnabled(c *gin.Context) {
	var payload request.EnabledRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.SetSystemEnabled(c.Request.Context(), c.Param("system_id"), *payload.Enabled)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SelectOption(c *gin.Context) {
	estimate, err := h.usecase.SelectOption(c.Request.Context(), c.Param("system_id"), c.Param("option_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ToggleOption(c *gin.Context) {
	estimate, err := h.usecase.ToggleOption(c.Request.Context(), c.Param("system_id"), c.Param("option_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SetOptionVisibility(c *gin.Context) {
	var payload request.VisibilityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.SetOptionVisibility(c.Request.Context(), c.Param("system_id"), c.Param("option_id"), *payload.Show)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// SyncWithTemplates re-derives system options and add-on pairs from the
// current catalogs.
func (h *EstimateHandler) SyncWithTemplates(c *gin.Context) {
	estimate, err := h.usecase.SyncWithTemplates(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) AttachAddOns(c *gin.Context) {
	estimate, err := h.usecase.AttachAddOns(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SetAddOnEnabled(c *gin.Context) {
	var payload request.EnabledRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.SetAddOnEnabled(c.Request.Context(), c.Param("addon_id"), *payload.Enabled)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) SetAddOnPrice(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	estimate, err := h.usecase.SetAddOnPrice(c.Request.Context(), c.Param("addon_id"), *payload.Price)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) fail(c *gin.Context, err error) {
	appErr := mapEstimateError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTier),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidSystemCount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSystemNotFound):
		return pkg.NewDomainErrorSimple("SYSTEM_NOT_FOUND", "System not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAddOnNotFound):
		return pkg.NewDomainErrorSimple("ADDON_NOT_FOUND", "Add-on not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "No template matches the requested configuration", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
