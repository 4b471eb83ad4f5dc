package entities

// AddOnTemplate is a reusable catalog entry for additional equipment.
// It lives independently of any estimate; AddOn instances mirror it.
type AddOnTemplate struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	DefaultPrice       float64 `json:"default_price"`
	Enabled            bool    `json:"enabled"`
	FreeWhenTierIsBest bool    `json:"free_when_tier_is_best"`
}

// TemplatesBundle is the import/export document for both catalogs.
// Imports replace both catalogs atomically; exports may carry either half
// alone with the other slice empty.
type TemplatesBundle struct {
	SystemTemplates []EstimateSystem `json:"systemTemplates"`
	AddOnTemplates  []AddOnTemplate  `json:"addOnTemplates"`
}
