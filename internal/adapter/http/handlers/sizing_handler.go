package handlers

import (
	"net/http"

	"coolseason/internal/adapter/http/dto/request"
	"coolseason/internal/adapter/http/dto/response"
	"coolseason/internal/usecase"
	"coolseason/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSizingPayload = pkg.NewDomainErrorSimple("INVALID_SIZING_INPUT", "Invalid sizing payload", http.StatusBadRequest)

// SizingHandler exposes the load-sizing calculator. Sizing is a pure
// computation; nothing here touches persistence.

type SizingHandler struct {
	engine usecase.ISizingEngine
}

func NewSizingHandler(engine usecase.ISizingEngine) *SizingHandler {
	return &SizingHandler{engine: engine}
}

// SizeFloors computes cooling tonnage and furnace BTU recommendations for
// up to three floors in one climate zone.
func (h *SizingHandler) SizeFloors(c *gin.Context) {
	var payload request.SizingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSizingPayload.HTTPStatus, errInvalidSizingPayload.ToHTTPError())
		return
	}

	zone, floors, err := payload.ToDomain()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_SIZING_INPUT", err.Error(), err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	results := h.engine.SizeFloors(zone, floors)
	c.JSON(http.StatusOK, response.FromFloorResults(zone, results))
}
