package handlers

import (
	"errors"
	"net/http"

	"coolseason/internal/adapter/http/dto/request"
	"coolseason/internal/adapter/http/dto/response"
	"coolseason/internal/usecase"
	"coolseason/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTemplatesPayload = pkg.NewDomainErrorSimple("INVALID_TEMPLATES_INPUT", "Invalid templates payload", http.StatusBadRequest)

// CatalogHandler manages the system and add-on template catalogs, plus the
// export/import bundle surface.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) GetSystemTemplates(c *gin.Context) {
	templates, err := h.usecase.SystemTemplates(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSystemTemplates(templates))
}

func (h *CatalogHandler) ReplaceSystemTemplates(c *gin.Context) {
	var payload request.ReplaceSystemTemplatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatesPayload.HTTPStatus, errInvalidTemplatesPayload.ToHTTPError())
		return
	}
	if err := h.usecase.ReplaceSystemTemplates(c.Request.Context(), payload.Templates); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSystemTemplates(payload.Templates))
}

func (h *CatalogHandler) GetAddOnTemplates(c *gin.Context) {
	templates, err := h.usecase.AddOnTemplates(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddOnTemplates(templates))
}

func (h *CatalogHandler) ReplaceAddOnTemplates(c *gin.Context) {
	var payload request.ReplaceAddOnTemplatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatesPayload.HTTPStatus, errInvalidTemplatesPayload.ToHTTPError())
		return
	}
	if err := h.usecase.ReplaceAddOnTemplates(c.Request.Context(), payload.Templates); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAddOnTemplates(payload.Templates))
}

// ExportBundle returns the catalogs as one re-importable document. The
// scope query parameter narrows the export to "systems" or "addons".
func (h *CatalogHandler) ExportBundle(c *gin.Context) {
	bundle, err := h.usecase.ExportBundle(c.Request.Context(), c.Query("scope"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplatesBundle(bundle))
}

func (h *CatalogHandler) ImportBundle(c *gin.Context) {
	var payload request.ImportBundleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTemplatesPayload.HTTPStatus, errInvalidTemplatesPayload.ToHTTPError())
		return
	}
	if err := h.usecase.ImportBundle(c.Request.Context(), payload.ToBundle()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTemplatesBundle(payload.ToBundle()))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyTemplatesBundle):
		return pkg.NewDomainErrorSimple("EMPTY_TEMPLATES_BUNDLE", "Templates bundle has no templates", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidExportScope):
		return pkg.NewDomainErrorSimple("INVALID_EXPORT_SCOPE", "Export scope must be all, systems or addons", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
