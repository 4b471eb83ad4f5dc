package usecase

import (
	"fmt"
	"math"
	"strings"

	"coolseason/internal/domain/entities"

	"github.com/google/uuid"
)

// Pure estimate-composition rules. Every function here returns the next
// state without touching persistence; the use case invokes persistence
// exactly once after the computation, so a mutation and the totals a
// subsequent read observes are strictly ordered.

// Tier backfill markup ladder, indexed by tier rank. Guarantees the
// customer always sees three priced choices even with incomplete catalogs.
var backfillMarkup = []float64{1.0, 1.12, 1.25}

// BuildOptionsForSystem derives the system's tier options from the catalog
// snapshot: single-part types clone one template's options, composite types
// invoke the matching merge builder. Missing tiers are backfilled and every
// option's tonnage is forced to the system's own capacity.
func BuildOptionsForSystem(templates []entities.EstimateSystem, sys entities.EstimateSystem) []entities.SystemOption {
	var built []entities.SystemOption

	switch sys.EquipmentType {
	case entities.EquipmentACCondenserCoil:
		if composite, ok := BuildCondenserCoilComposite(templates, sys.Tonnage); ok {
			built = composite.Options
		}
	case entities.EquipmentACCondenserCoilFurnace:
		if composite, ok := BuildCondenserCoilFurnaceComposite(templates, sys.Tonnage, sys.FurnaceBTU); ok {
			built = composite.Options
		}
	case entities.EquipmentACFurnace:
		if composite, ok := BuildACFurnaceComposite(templates, sys.Tonnage); ok {
			built = composite.Options
		}
	case entities.EquipmentHeatPumpAirHandler:
		if composite, ok := BuildHeatPumpAirHandlerComposite(templates, sys.Tonnage); ok {
			built = composite.Options
		}
	default:
		if tpl, ok := TemplateFor(templates, sys.Tonnage, sys.EquipmentType); ok {
			built = cloneOptions(tpl.Options)
		}
	}

	built = EnsureAllTiers(built, sys.Tonnage)
	for i := range built {
		built[i].Tonnage = sys.Tonnage
	}
	return built
}

// EnsureAllTiers backfills missing tiers by cloning the first available
// option (canonical tier order) and applying the markup ladder by tier
// rank. Returns options in canonical tier order. An empty input stays
// empty: there is nothing to clone from.
func EnsureAllTiers(options []entities.SystemOption, tonnage float64) []entities.SystemOption {
	if len(options) == 0 {
		return options
	}

	byTier := make(map[entities.Tier]entities.SystemOption, len(options))
	for _, opt := range options {
		if _, exists := byTier[opt.Tier]; !exists {
			byTier[opt.Tier] = opt
		}
	}

	var base entities.SystemOption
	for _, tier := range entities.Tiers() {
		if opt, ok := byTier[tier]; ok {
			base = opt
			break
		}
	}

	for _, tier := range entities.Tiers() {
		if _, ok := byTier[tier]; ok {
			continue
		}
		price := base.Price
		if markup := backfillMarkup[tier.Rank()]; markup != 1.0 {
			price = math.Round(base.Price * markup)
		}
		byTier[tier] = entities.SystemOption{
			ID:             uuid.NewString(),
			Tier:           tier,
			ShowToCustomer: true,
			Seer:           base.Seer,
			Stage:          base.Stage,
			Tonnage:        tonnage,
			Price:          price,
			OutdoorModel:   base.OutdoorModel,
			IndoorModel:    base.IndoorModel,
			FurnaceModel:   base.FurnaceModel,
			WarrantyText:   base.WarrantyText,
			Advantages:     base.Advantages,
		}
	}

	out := make([]entities.SystemOption, 0, len(byTier))
	for _, tier := range entities.Tiers() {
		if opt, ok := byTier[tier]; ok {
			out = append(out, opt)
		}
	}
	return out
}

// SyncSystemsWithTemplates re-derives every system's options from the
// catalog snapshot without losing user-entered state: per tier the fresh
// option takes all pricing/spec fields while inheriting the existing
// option's id, visibility and selection. Systems whose templates produce
// nothing keep their current options.
func SyncSystemsWithTemplates(estimate entities.Estimate, templates []entities.EstimateSystem) entities.Estimate {
	for i := range estimate.Systems {
		sys := estimate.Systems[i]
		fresh := BuildOptionsForSystem(templates, sys)
		if len(fresh) == 0 {
			continue
		}
		for j := range fresh {
			if existing, ok := sys.OptionByTier(fresh[j].Tier); ok {
				fresh[j].ID = existing.ID
				fresh[j].ShowToCustomer = existing.ShowToCustomer
				fresh[j].IsSelectedByCustomer = existing.IsSelectedByCustomer
			}
		}
		estimate.Systems[i].Options = fresh
	}
	return estimate
}

// AttachAddOnTemplates rebuilds the estimate's add-on list as a keyed
// upsert-and-prune over current systems x add-on templates. Existing
// (system, template) pairs keep their id and enabled flag but refresh
// name, description and price from the template; pairs with no template or
// system left are dropped. This is the full catalog-refresh path: manual
// per-add-on price edits do not survive it.
func AttachAddOnTemplates(estimate entities.Estimate, addOnTemplates []entities.AddOnTemplate) entities.Estimate {
	type pairKey struct {
		templateID string
		systemID   string
	}
	existing := make(map[pairKey]entities.AddOn, len(estimate.AddOns))
	for _, addOn := range estimate.AddOns {
		if addOn.TemplateID == "" {
			continue
		}
		existing[pairKey{addOn.TemplateID, addOn.SystemID}] = addOn
	}

	rebuilt := make([]entities.AddOn, 0, len(estimate.Systems)*len(addOnTemplates))
	for _, sys := range estimate.Systems {
		for _, tmpl := range addOnTemplates {
			key := pairKey{tmpl.ID, sys.ID}
			if prev, ok := existing[key]; ok {
				rebuilt = append(rebuilt, entities.AddOn{
					ID:          prev.ID,
					TemplateID:  tmpl.ID,
					SystemID:    sys.ID,
					Name:        tmpl.Name,
					Description: tmpl.Description,
					Enabled:     prev.Enabled,
					Price:       tmpl.DefaultPrice,
				})
			} else {
				rebuilt = append(rebuilt, entities.AddOn{
					ID:          uuid.NewString(),
					TemplateID:  tmpl.ID,
					SystemID:    sys.ID,
					Name:        tmpl.Name,
					Description: tmpl.Description,
					Enabled:     tmpl.Enabled,
					Price:       tmpl.DefaultPrice,
				})
			}
		}
	}
	estimate.AddOns = rebuilt
	return estimate
}

// RecalculateTotals folds enabled selections into the three derived totals.
// freeWhenBest maps add-on template ids to their free-when-best flag; when
// any system has a best-tier selection, those add-ons are forced to zero.
// Unlike AttachAddOnTemplates this path leaves any other manually edited
// add-on price untouched.
func RecalculateTotals(estimate entities.Estimate, freeWhenBest map[string]bool) entities.Estimate {
	var systemsSubtotal float64
	for _, sys := range estimate.Systems {
		if !sys.Enabled {
			continue
		}
		if selected, ok := sys.SelectedOption(); ok {
			systemsSubtotal += selected.Price
		}
	}

	if estimate.HasBestSelected() {
		for i := range estimate.AddOns {
			if freeWhenBest[estimate.AddOns[i].TemplateID] {
				estimate.AddOns[i].Price = 0
			}
		}
	}

	var addOnsSubtotal float64
	for _, addOn := range estimate.AddOns {
		if addOn.Enabled {
			addOnsSubtotal += addOn.Price
		}
	}

	estimate.SystemsSubtotal = systemsSubtotal
	estimate.AddOnsSubtotal = addOnsSubtotal
	estimate.GrandTotal = systemsSubtotal + addOnsSubtotal
	return estimate
}

// CloneSystemFromTemplate copies a catalog template into a fresh estimate
// system: new ids throughout, selections cleared, visibility kept.
func CloneSystemFromTemplate(tpl entities.EstimateSystem, name string) entities.EstimateSystem {
	if name == "" {
		name = tpl.Name
	}
	return entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          name,
		Tonnage:       tpl.Tonnage,
		FurnaceBTU:    tpl.FurnaceBTU,
		EquipmentType: tpl.EquipmentType,
		Options:       cloneOptions(tpl.Options),
	}
}

func cloneOptions(options []entities.SystemOption) []entities.SystemOption {
	cloned := make([]entities.SystemOption, 0, len(options))
	for _, opt := range options {
		c := opt
		c.ID = uuid.NewString()
		c.IsSelectedByCustomer = false
		c.Advantages = append([]string(nil), opt.Advantages...)
		cloned = append(cloned, c)
	}
	return cloned
}

// NextEstimateNumber generates the next CS-prefixed sequence number from
// the existing estimates list (max numeric suffix + 1).
func NextEstimateNumber(estimates []entities.Estimate) string {
	const prefix = "CS-"
	maxSeen := 0
	for _, est := range estimates {
		if !strings.HasPrefix(est.EstimateNumber, prefix) {
			continue
		}
		var n int
		if _, err := fmt.Sscanf(est.EstimateNumber[len(prefix):], "%d", &n); err == nil && n > maxSeen {
			maxSeen = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, maxSeen+1)
}

// BuildTextSummary renders the shareable plain-text summary of an estimate.
func BuildTextSummary(estimate entities.Estimate) string {
	var lines []string
	lines = append(lines,
		"CoolSeason HVAC Estimate",
		fmt.Sprintf("Customer: %s", estimate.CustomerName),
		fmt.Sprintf("Address: %s", estimate.Address),
		fmt.Sprintf("Phone: %s  Email: %s", estimate.Phone, estimate.Email),
		"",
		"Systems:")

	for _, sys := range estimate.Systems {
		if !sys.Enabled {
			continue
		}
		if selected, ok := sys.SelectedOption(); ok {
			lines = append(lines, fmt.Sprintf("- %s • %s • %s • %s %d SEER %s • %s",
				sys.Name, sys.EquipmentType.DisplayName(), FormatCapacity(sys.Tonnage, sys.EquipmentType),
				selected.Tier.DisplayName(), int(selected.Seer), selected.Stage, FormatCurrency(selected.Price)))
		} else {
			lines = append(lines, fmt.Sprintf("- %s • %s • %s • No selection",
				sys.Name, sys.EquipmentType.DisplayName(), FormatCapacity(sys.Tonnage, sys.EquipmentType)))
		}
	}

	lines = append(lines, "", "Additional Equipment:")
	enabledCount := 0
	for _, addOn := range estimate.AddOns {
		if addOn.Enabled {
			enabledCount++
			lines = append(lines, fmt.Sprintf("- %s: %s", addOn.Name, FormatCurrency(addOn.Price)))
		}
	}
	if enabledCount == 0 {
		lines = append(lines, "- None")
	}

	lines = append(lines, "",
		"Totals:",
		fmt.Sprintf("- Systems: %s", FormatCurrency(estimate.SystemsSubtotal)),
		fmt.Sprintf("- Add-Ons: %s", FormatCurrency(estimate.AddOnsSubtotal)),
		fmt.Sprintf("- Total: %s", FormatCurrency(estimate.GrandTotal)))
	return strings.Join(lines, "\n")
}
