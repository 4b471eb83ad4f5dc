package response

import "coolseason/internal/domain/entities"

type AddOnTemplateResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	DefaultPrice       float64 `json:"default_price"`
	Enabled            bool    `json:"enabled"`
	FreeWhenTierIsBest bool    `json:"free_when_tier_is_best"`
}

type SystemTemplatesResponse struct {
	Templates []EstimateSystemResponse `json:"templates"`
}

type AddOnTemplatesResponse struct {
	Templates []AddOnTemplateResponse `json:"templates"`
}

// TemplatesBundleResponse mirrors the import payload, so an export can be
// re-imported without transformation.
type TemplatesBundleResponse struct {
	SystemTemplates []EstimateSystemResponse `json:"systemTemplates"`
	AddOnTemplates  []AddOnTemplateResponse  `json:"addOnTemplates"`
}

func FromSystemTemplates(templates []entities.EstimateSystem) SystemTemplatesResponse {
	out := make([]EstimateSystemResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, fromSystem(tpl))
	}
	return SystemTemplatesResponse{Templates: out}
}

func FromAddOnTemplates(templates []entities.AddOnTemplate) AddOnTemplatesResponse {
	return AddOnTemplatesResponse{Templates: fromAddOnTemplates(templates)}
}

func FromTemplatesBundle(bundle entities.TemplatesBundle) TemplatesBundleResponse {
	systems := make([]EstimateSystemResponse, 0, len(bundle.SystemTemplates))
	for _, tpl := range bundle.SystemTemplates {
		systems = append(systems, fromSystem(tpl))
	}
	return TemplatesBundleResponse{
		SystemTemplates: systems,
		AddOnTemplates:  fromAddOnTemplates(bundle.AddOnTemplates),
	}
}

func fromAddOnTemplates(templates []entities.AddOnTemplate) []AddOnTemplateResponse {
	out := make([]AddOnTemplateResponse, 0, len(templates))
	for _, tpl := range templates {
		out = append(out, AddOnTemplateResponse{
			ID:                 tpl.ID,
			Name:               tpl.Name,
			Description:        tpl.Description,
			DefaultPrice:       tpl.DefaultPrice,
			Enabled:            tpl.Enabled,
			FreeWhenTierIsBest: tpl.FreeWhenTierIsBest,
		})
	}
	return out
}
