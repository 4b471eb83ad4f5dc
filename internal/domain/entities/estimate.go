package entities

import "time"

// EstimateStatus represents the lifecycle of a customer estimate.
//
// Domain notes:
//   - An estimate starts pending and is approved when the customer signs off.
//   - There is no rejected state; unwanted estimates are simply deleted.

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
)

// Tier is one of the three purchase grades offered per system.
// The declaration order is the canonical tier order used everywhere
// (option ordering, backfill ladder, first-selected-wins totals).

type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// Tiers returns all tiers in canonical order.
func Tiers() []Tier {
	return []Tier{TierGood, TierBetter, TierBest}
}

// Rank returns the 0-based position of the tier in canonical order.
func (t Tier) Rank() int {
	switch t {
	case TierGood:
		return 0
	case TierBetter:
		return 1
	case TierBest:
		return 2
	}
	return -1
}

// DisplayName returns the customer-facing label.
func (t Tier) DisplayName() string {
	switch t {
	case TierGood:
		return "Good"
	case TierBetter:
		return "Better"
	case TierBest:
		return "Best"
	}
	return string(t)
}

// EquipmentType is the closed set of purchasable configurations.
//
// Single-part types are priced directly by catalog templates. Composite types
// have no pricing source of their own: their options are always derived by
// merging the constituent single-part templates at the same capacity.

type EquipmentType string

const (
	EquipmentACCondenserOnly        EquipmentType = "ac_condenser_only"
	EquipmentCoilOnly               EquipmentType = "coil_only"
	EquipmentHeatPumpOnly           EquipmentType = "heat_pump_only"
	EquipmentAirHandlerOnly         EquipmentType = "air_handler_only"
	EquipmentFurnaceOnly            EquipmentType = "furnace_only"
	EquipmentACCondenserCoil        EquipmentType = "ac_condenser_coil"
	EquipmentACCondenserCoilFurnace EquipmentType = "ac_condenser_coil_furnace"
	EquipmentACFurnace              EquipmentType = "ac_furnace"
	EquipmentHeatPumpAirHandler     EquipmentType = "heat_pump_air_handler"
)

// EquipmentTypes returns every purchasable configuration, singles first.
func EquipmentTypes() []EquipmentType {
	return []EquipmentType{
		EquipmentACCondenserOnly,
		EquipmentCoilOnly,
		EquipmentHeatPumpOnly,
		EquipmentAirHandlerOnly,
		EquipmentFurnaceOnly,
		EquipmentACCondenserCoil,
		EquipmentACCondenserCoilFurnace,
		EquipmentACFurnace,
		EquipmentHeatPumpAirHandler,
	}
}

// IsComposite reports whether the type is priced by merging single parts.
func (e EquipmentType) IsComposite() bool {
	return len(e.Parts()) > 0
}

// NeedsFurnace reports whether a furnace template participates in the merge.
func (e EquipmentType) NeedsFurnace() bool {
	return e == EquipmentACCondenserCoilFurnace || e == EquipmentACFurnace
}

// Parts returns the non-furnace single-part constituents of a composite
// type, or nil for single-part types. Furnace participation is handled
// separately because the furnace is looked up by BTU, not tonnage.
func (e EquipmentType) Parts() []EquipmentType {
	switch e {
	case EquipmentACCondenserCoil, EquipmentACCondenserCoilFurnace, EquipmentACFurnace:
		return []EquipmentType{EquipmentACCondenserOnly, EquipmentCoilOnly}
	case EquipmentHeatPumpAirHandler:
		return []EquipmentType{EquipmentHeatPumpOnly, EquipmentAirHandlerOnly}
	}
	return nil
}

// ModelSlot identifies which model-code field a single-part type owns.
type ModelSlot int

const (
	ModelSlotNone ModelSlot = iota
	ModelSlotOutdoor
	ModelSlotIndoor
	ModelSlotFurnace
)

// OwnedModelSlots enumerates the model-code slots an equipment type fills.
// Composite merges take each slot from the constituent that owns it.
func (e EquipmentType) OwnedModelSlots() []ModelSlot {
	switch e {
	case EquipmentACCondenserOnly:
		return []ModelSlot{ModelSlotOutdoor}
	case EquipmentCoilOnly, EquipmentAirHandlerOnly:
		return []ModelSlot{ModelSlotIndoor}
	case EquipmentHeatPumpOnly:
		return []ModelSlot{ModelSlotOutdoor, ModelSlotIndoor}
	case EquipmentFurnaceOnly:
		return []ModelSlot{ModelSlotFurnace}
	}
	return nil
}

// DisplayName returns the customer-facing label.
func (e EquipmentType) DisplayName() string {
	switch e {
	case EquipmentACCondenserOnly:
		return "AC Condenser Only"
	case EquipmentCoilOnly:
		return "Coil Only"
	case EquipmentHeatPumpOnly:
		return "Heat Pump Only"
	case EquipmentAirHandlerOnly:
		return "Air Handler Only"
	case EquipmentFurnaceOnly:
		return "Furnace Only"
	case EquipmentACCondenserCoil:
		return "AC Condenser + Coil"
	case EquipmentACCondenserCoilFurnace:
		return "AC Condenser + Coil + Furnace"
	case EquipmentACFurnace:
		return "AC + Furnace"
	case EquipmentHeatPumpAirHandler:
		return "Heat Pump + Air Handler"
	}
	return string(e)
}

// SystemOption is one tier's purchasable configuration for a system.
//
// Optional model/warranty fields use the empty string as "absent"; composite
// merges treat the first non-empty value as the winner for warranty and fill
// each model slot from the constituent that owns it.

type SystemOption struct {
	ID                   string  `json:"id"`
	Tier                 Tier    `json:"tier"`
	ShowToCustomer       bool    `json:"show_to_customer"`
	IsSelectedByCustomer bool    `json:"is_selected_by_customer"`
	Seer                 float64 `json:"seer"`
	Stage                string  `json:"stage"`
	Tonnage              float64 `json:"tonnage"`
	Price                float64 `json:"price"`

	OutdoorModel string   `json:"outdoor_model,omitempty"`
	IndoorModel  string   `json:"indoor_model,omitempty"`
	FurnaceModel string   `json:"furnace_model,omitempty"`
	WarrantyText string   `json:"warranty_text,omitempty"`
	Advantages   []string `json:"advantages,omitempty"`
}

// EstimateSystem is one piece of customer equipment on an estimate.
//
// Capacity semantics:
//   - Tonnage holds cooling tonnage for every type except furnace-only,
//     where it holds the furnace BTU (catalog lookup convenience).
//   - FurnaceBTU, when > 0, overrides the tonnage-derived furnace target
//     for the condenser+coil+furnace composite.

type EstimateSystem struct {
	ID            string        `json:"id"`
	Enabled       bool          `json:"enabled"`
	Name          string        `json:"name"`
	Tonnage       float64       `json:"tonnage"`
	FurnaceBTU    float64       `json:"furnace_btu,omitempty"`
	EquipmentType EquipmentType `json:"equipment_type"`

	ExistingBrand    string `json:"existing_brand,omitempty"`
	ExistingModel    string `json:"existing_model,omitempty"`
	ExistingAgeYears int    `json:"existing_age_years,omitempty"`
	ExistingLocation string `json:"existing_location,omitempty"`
	ExistingNotes    string `json:"existing_notes,omitempty"`

	Options []SystemOption `json:"options"`
}

// SelectedOption returns the totals-contributing option: the first option in
// stored (canonical tier) order whose IsSelectedByCustomer flag is set.
func (s EstimateSystem) SelectedOption() (SystemOption, bool) {
	for _, opt := range s.Options {
		if opt.IsSelectedByCustomer {
			return opt, true
		}
	}
	return SystemOption{}, false
}

// OptionByTier returns the system's option for the given tier, if present.
func (s EstimateSystem) OptionByTier(tier Tier) (SystemOption, bool) {
	for _, opt := range s.Options {
		if opt.Tier == tier {
			return opt, true
		}
	}
	return SystemOption{}, false
}

// AddOn is an add-on template instantiated against a specific system.
// Enabled is the per-estimate toggle, independent of the template's own flag.
type AddOn struct {
	ID          string  `json:"id"`
	TemplateID  string  `json:"template_id,omitempty"`
	SystemID    string  `json:"system_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Enabled     bool    `json:"enabled"`
	Price       float64 `json:"price"`
}

// Estimate is the aggregate root for one customer proposal.
//
// Invariant: SystemsSubtotal, AddOnsSubtotal and GrandTotal always equal the
// sum of selected-option prices over enabled systems plus the sum of enabled
// add-on prices. They are recomputed synchronously after every mutation and
// are never left stale.

type Estimate struct {
	ID             string         `json:"id"`
	EstimateDate   time.Time      `json:"estimate_date"`
	EstimateNumber string         `json:"estimate_number"`
	Status         EstimateStatus `json:"status"`

	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Systems []EstimateSystem `json:"systems"`
	AddOns  []AddOn          `json:"add_ons"`

	SystemsSubtotal float64 `json:"systems_subtotal"`
	AddOnsSubtotal  float64 `json:"add_ons_subtotal"`
	GrandTotal      float64 `json:"grand_total"`

	// Opaque signature image bytes captured by the client; never inspected.
	CustomerSignature []byte `json:"customer_signature,omitempty"`
}

// SystemByID returns the index of the system with the given id, or -1.
func (e Estimate) SystemByID(systemID string) int {
	for i := range e.Systems {
		if e.Systems[i].ID == systemID {
			return i
		}
	}
	return -1
}

// HasBestSelected reports whether any system currently has a best-tier
// option selected. Drives the free-when-best add-on pricing rule.
func (e Estimate) HasBestSelected() bool {
	for _, sys := range e.Systems {
		for _, opt := range sys.Options {
			if opt.Tier == TierBest && opt.IsSelectedByCustomer {
				return true
			}
		}
	}
	return false
}
