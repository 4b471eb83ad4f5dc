package request

import "coolseason/internal/domain/entities"

// ImportBundleRequest replaces the template catalogs wholesale. The payload
// shape matches the export format, so exported bundles re-import as-is.
type ImportBundleRequest struct {
	SystemTemplates []entities.EstimateSystem `json:"systemTemplates"`
	AddOnTemplates  []entities.AddOnTemplate  `json:"addOnTemplates"`
}

func (r ImportBundleRequest) ToBundle() entities.TemplatesBundle {
	return entities.TemplatesBundle{
		SystemTemplates: r.SystemTemplates,
		AddOnTemplates:  r.AddOnTemplates,
	}
}

// ReplaceSystemTemplatesRequest replaces only the system template catalog.
type ReplaceSystemTemplatesRequest struct {
	Templates []entities.EstimateSystem `json:"templates" binding:"required"`
}

// ReplaceAddOnTemplatesRequest replaces only the add-on template catalog.
type ReplaceAddOnTemplatesRequest struct {
	Templates []entities.AddOnTemplate `json:"templates" binding:"required"`
}
