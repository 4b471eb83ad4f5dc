package routes

import (
	"coolseason/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSizing    = "/sizing"
	PathEstimates = "/estimates"
	PathSystems   = "/systems"
	PathAddOns    = "/addons"
	PathTemplates = "/templates"
)

func addEstimateRoutes(
	rg *gin.RouterGroup,
	sizingHandler *handlers.SizingHandler,
	estimateHandler *handlers.EstimateHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	sizing := rg.Group(PathSizing)
	{
		sizing.POST("", sizingHandler.SizeFloors)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.StartNewEstimate)
		estimates.GET("/current", estimateHandler.GetCurrentEstimate)
		estimates.PUT("/current", estimateHandler.LoadEstimate)
		estimates.PUT("/current/customer", estimateHandler.UpdateCustomer)
		estimates.PATCH("/current/status", estimateHandler.SetStatus)
		estimates.PUT("/current/signature", estimateHandler.UpdateSignature)
		estimates.POST("/current/accept", estimateHandler.AcceptProposal)
		estimates.GET("/current/summary", estimateHandler.GetTextSummary)
		estimates.GET("/current/summary.pdf", estimateHandler.GetPDFSummary)
		estimates.DELETE("/:estimate_id", estimateHandler.DeleteEstimate)
	}

	// System and add-on routes operate on the current estimate.
	systems := rg.Group(PathSystems)
	{
		systems.POST("", estimateHandler.AddSystem)
		systems.PUT("/count", estimateHandler.EnsureSystemCount)
		systems.POST("/sync", estimateHandler.SyncWithTemplates)
		systems.PATCH("/:system_id", estimateHandler.UpdateSystemMeta)
		systems.PATCH("/:system_id/enabled", estimateHandler.SetSystemEnabled)
		systems.DELETE("/:system_id", estimateHandler.RemoveSystem)
		systems.POST("/:system_id/options/:option_id/select", estimateHandler.SelectOption)
		systems.POST("/:system_id/options/:option_id/toggle", estimateHandler.ToggleOption)
		systems.PATCH("/:system_id/options/:option_id/visibility", estimateHandler.SetOptionVisibility)
	}

	addOns := rg.Group(PathAddOns)
	{
		addOns.POST("/attach", estimateHandler.AttachAddOns)
		addOns.PATCH("/:addon_id/enabled", estimateHandler.SetAddOnEnabled)
		addOns.PATCH("/:addon_id/price", estimateHandler.SetAddOnPrice)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.GET("/systems", catalogHandler.GetSystemTemplates)
		templates.PUT("/systems", catalogHandler.ReplaceSystemTemplates)
		templates.GET("/addons", catalogHandler.GetAddOnTemplates)
		templates.PUT("/addons", catalogHandler.ReplaceAddOnTemplates)
		templates.GET("/export", catalogHandler.ExportBundle)
		templates.POST("/import", catalogHandler.ImportBundle)
	}
}
