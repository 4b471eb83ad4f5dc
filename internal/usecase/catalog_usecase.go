package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"math"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEmptyTemplatesBundle = errors.New("empty templates bundle")
	ErrInvalidExportScope   = errors.New("invalid export scope")
)

// Catalog pricing constants. Base rates are per tier at the reference
// capacity (2.5 ton for tonnage types, 80,000 BTU for furnaces) and scale
// linearly with capacity, rounded to the nearest $50.
const (
	referenceTonnage    = 2.5
	referenceFurnaceBTU = 80000.0

	defaultWarrantyText = "WARRANTY: 10 years manufacturer warranty, 1 year labor warranty"
)

var (
	catalogTonnages    = []float64{1.5, 2, 2.5, 3, 3.5, 4, 5}
	catalogFurnaceBTUs = []float64{40000, 45000, 60000, 70000, 80000, 90000, 100000, 110000}
)

// tierSpec describes the fixed per-tier pricing shape for one equipment type.
type tierSpec struct {
	baseGood, baseBetter, baseBest float64
	seerGood, seerBetter, seerBest float64
}

var tierSpecs = map[entities.EquipmentType]tierSpec{
	entities.EquipmentACCondenserOnly: {4200, 5200, 6400, 14, 16, 18},
	entities.EquipmentCoilOnly:        {900, 1100, 1400, 14, 16, 18},
	entities.EquipmentHeatPumpOnly:    {5200, 6800, 8200, 15, 17, 19},
	entities.EquipmentAirHandlerOnly:  {1200, 1500, 1900, 0, 0, 0},
	entities.EquipmentFurnaceOnly:     {1900, 2400, 2900, 0, 0, 0},
}

var tierStages = map[entities.Tier]string{
	entities.TierGood:   "Single",
	entities.TierBetter: "Two-Stage",
	entities.TierBest:   "Variable Speed",
}

// ICatalogUseCase manages the editable template catalogs used to seed and
// re-sync estimates. Load never fails hard: a missing or corrupt snapshot
// falls back to the generated defaults.

type ICatalogUseCase interface {
	SystemTemplates(ctx context.Context) ([]entities.EstimateSystem, error)
	AddOnTemplates(ctx context.Context) ([]entities.AddOnTemplate, error)
	ReplaceSystemTemplates(ctx context.Context, templates []entities.EstimateSystem) error
	ReplaceAddOnTemplates(ctx context.Context, templates []entities.AddOnTemplate) error
	ExportBundle(ctx context.Context, scope string) (entities.TemplatesBundle, error)
	ImportBundle(ctx context.Context, bundle entities.TemplatesBundle) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// SystemTemplates loads the system template catalog, seeding defaults for
// any missing (equipment type, capacity) baseline entry.
func (u *CatalogUseCase) SystemTemplates(ctx context.Context) ([]entities.EstimateSystem, error) {
	templates, err := u.repo.LoadSystemTemplates(ctx)
	if err != nil {
		log.Printf("[catalog] system templates load failed, using defaults: %v", err)
		templates = nil
	}
	seeded, changed := SeedMissingTemplates(templates)
	if changed {
		if err := u.repo.SaveSystemTemplates(ctx, seeded); err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

func (u *CatalogUseCase) AddOnTemplates(ctx context.Context) ([]entities.AddOnTemplate, error) {
	templates, err := u.repo.LoadAddOnTemplates(ctx)
	if err != nil {
		log.Printf("[catalog] add-on templates load failed, using defaults: %v", err)
		templates = nil
	}
	if len(templates) == 0 {
		templates = DefaultAddOnTemplates()
		if err := u.repo.SaveAddOnTemplates(ctx, templates); err != nil {
			return nil, err
		}
	}
	return templates, nil
}

func (u *CatalogUseCase) ReplaceSystemTemplates(ctx context.Context, templates []entities.EstimateSystem) error {
	return u.repo.SaveSystemTemplates(ctx, templates)
}

func (u *CatalogUseCase) ReplaceAddOnTemplates(ctx context.Context, templates []entities.AddOnTemplate) error {
	return u.repo.SaveAddOnTemplates(ctx, templates)
}

// ExportBundle returns the templates bundle for the given scope:
// "all", "systems" or "addons". Unknown scopes are rejected.
func (u *CatalogUseCase) ExportBundle(ctx context.Context, scope string) (entities.TemplatesBundle, error) {
	var bundle entities.TemplatesBundle
	switch scope {
	case "", "all":
		systems, err := u.SystemTemplates(ctx)
		if err != nil {
			return bundle, err
		}
		addOns, err := u.AddOnTemplates(ctx)
		if err != nil {
			return bundle, err
		}
		bundle.SystemTemplates = systems
		bundle.AddOnTemplates = addOns
	case "systems":
		systems, err := u.SystemTemplates(ctx)
		if err != nil {
			return bundle, err
		}
		bundle.SystemTemplates = systems
		bundle.AddOnTemplates = []entities.AddOnTemplate{}
	case "addons":
		addOns, err := u.AddOnTemplates(ctx)
		if err != nil {
			return bundle, err
		}
		bundle.SystemTemplates = []entities.EstimateSystem{}
		bundle.AddOnTemplates = addOns
	default:
		return bundle, ErrInvalidExportScope
	}
	return bundle, nil
}

// ImportBundle replaces both catalogs wholesale. The two saves are treated
// as one logical operation; a failure on either side surfaces to the caller.
func (u *CatalogUseCase) ImportBundle(ctx context.Context, bundle entities.TemplatesBundle) error {
	if len(bundle.SystemTemplates) == 0 && len(bundle.AddOnTemplates) == 0 {
		return ErrEmptyTemplatesBundle
	}
	if err := u.repo.SaveSystemTemplates(ctx, bundle.SystemTemplates); err != nil {
		return err
	}
	return u.repo.SaveAddOnTemplates(ctx, bundle.AddOnTemplates)
}

// DefaultSystemTemplates builds the full baseline template matrix: every
// single-part equipment type across the catalog capacity steps.
func DefaultSystemTemplates() []entities.EstimateSystem {
	var result []entities.EstimateSystem
	for _, t := range catalogTonnages {
		result = append(result, newTemplate(fmt.Sprintf("%s AC Condenser", FormatTonnage(t)), entities.EquipmentACCondenserOnly, t))
	}
	for _, t := range catalogTonnages {
		result = append(result, newTemplate(fmt.Sprintf("%s AC Coil", FormatTonnage(t)), entities.EquipmentCoilOnly, t))
	}
	for _, t := range catalogTonnages {
		result = append(result, newTemplate(fmt.Sprintf("%s Heat Pump", FormatTonnage(t)), entities.EquipmentHeatPumpOnly, t))
	}
	for _, t := range catalogTonnages {
		result = append(result, newTemplate(fmt.Sprintf("%s Air Handler", FormatTonnage(t)), entities.EquipmentAirHandlerOnly, t))
	}
	// Furnace capacity is BTU, stored in the tonnage field for lookup.
	for _, btu := range catalogFurnaceBTUs {
		result = append(result, newTemplate(fmt.Sprintf("%s BTU Furnace", groupThousands(int(btu))), entities.EquipmentFurnaceOnly, btu))
	}
	return result
}

func newTemplate(name string, equipment entities.EquipmentType, capacity float64) entities.EstimateSystem {
	return entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          name,
		Tonnage:       capacity,
		EquipmentType: equipment,
		Options:       MakeTierOptions(equipment, capacity),
	}
}

// DefaultAddOnTemplates is the seed add-on catalog.
func DefaultAddOnTemplates() []entities.AddOnTemplate {
	return []entities.AddOnTemplate{
		{ID: uuid.NewString(), Name: "WiFi Thermostat", Description: "Smart thermostat install", DefaultPrice: 350, Enabled: true, FreeWhenTierIsBest: true},
		{ID: uuid.NewString(), Name: "Surge Protector", Description: "Outdoor unit protection", DefaultPrice: 225, Enabled: true},
		{ID: uuid.NewString(), Name: "Duct Sealing", Description: "Seal supply/return leaks", DefaultPrice: 600, Enabled: true},
	}
}

// SeedMissingTemplates appends a baseline template for every (equipment
// type, capacity) pair the catalog is missing. Reports whether anything
// was added.
func SeedMissingTemplates(templates []entities.EstimateSystem) ([]entities.EstimateSystem, bool) {
	baseline := DefaultSystemTemplates()
	out := templates
	changed := false
	for _, tpl := range baseline {
		found := false
		for _, existing := range templates {
			if existing.EquipmentType == tpl.EquipmentType && existing.Tonnage == tpl.Tonnage {
				found = true
				break
			}
		}
		if !found {
			out = append(out, tpl)
			changed = true
		}
	}
	return out, changed
}

// MakeTierOptions synthesizes the three tier options for a single-part
// equipment type at the given capacity. Prices scale linearly from the
// reference capacity and round to the nearest $50; SEER and stage labels are
// fixed per tier and type (no SEER for furnaces and air handlers).
func MakeTierOptions(equipment entities.EquipmentType, capacity float64) []entities.SystemOption {
	spec, ok := tierSpecs[equipment]
	if !ok {
		// Composite types are never priced directly.
		return nil
	}

	scale := capacity / referenceTonnage
	if equipment == entities.EquipmentFurnaceOnly {
		scale = capacity / referenceFurnaceBTU
	}

	prices := map[entities.Tier]float64{
		entities.TierGood:   roundTo50(spec.baseGood * scale),
		entities.TierBetter: roundTo50(spec.baseBetter * scale),
		entities.TierBest:   roundTo50(spec.baseBest * scale),
	}
	seers := map[entities.Tier]float64{
		entities.TierGood:   spec.seerGood,
		entities.TierBetter: spec.seerBetter,
		entities.TierBest:   spec.seerBest,
	}

	options := make([]entities.SystemOption, 0, 3)
	for _, tier := range entities.Tiers() {
		opt := entities.SystemOption{
			ID:             uuid.NewString(),
			Tier:           tier,
			ShowToCustomer: true,
			Seer:           seers[tier],
			Stage:          tierStages[tier],
			Tonnage:        capacity,
			Price:          prices[tier],
			WarrantyText:   defaultWarrantyText,
		}
		fillModelCodes(&opt, equipment, capacity, tier)
		options = append(options, opt)
	}
	return options
}

// fillModelCodes assigns deterministic placeholder model codes to the slots
// the equipment type owns.
func fillModelCodes(opt *entities.SystemOption, equipment entities.EquipmentType, capacity float64, tier entities.Tier) {
	for _, slot := range equipment.OwnedModelSlots() {
		switch slot {
		case entities.ModelSlotOutdoor:
			prefix := "COND"
			if equipment == entities.EquipmentHeatPumpOnly {
				prefix = "HPOD"
			}
			opt.OutdoorModel = modelCode(prefix, equipment, capacity, tier)
		case entities.ModelSlotIndoor:
			prefix := "INDR"
			if equipment == entities.EquipmentHeatPumpOnly {
				prefix = "HPIN"
			}
			opt.IndoorModel = modelCode(prefix, equipment, capacity, tier)
		case entities.ModelSlotFurnace:
			opt.FurnaceModel = modelCode("FURN", equipment, capacity, tier)
		}
	}
}

// modelCode derives a reproducible 5-letter code from the seed string,
// suffixed with the numeric capacity tag (tonnage 1.5 -> 18, +6 per half
// ton; furnace BTU/1000).
func modelCode(prefix string, equipment entities.EquipmentType, capacity float64, tier entities.Tier) string {
	seed := fmt.Sprintf("%s-%s-%g-%s", prefix, equipment, capacity, tier)

	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	hash := h.Sum64()

	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	code := make([]byte, 5)
	for i := range code {
		code[i] = letters[hash%uint64(len(letters))]
		hash = hash / (3 + hash%7)
	}
	return fmt.Sprintf("%s-%s", code, capacityTag(equipment, capacity))
}

func capacityTag(equipment entities.EquipmentType, capacity float64) string {
	if equipment == entities.EquipmentFurnaceOnly {
		return fmt.Sprintf("%d", int(math.Round(capacity/1000)))
	}
	steps := int(math.Round((capacity - 1.5) / 0.5))
	return fmt.Sprintf("%d", 18+steps*6)
}

func roundTo50(v float64) float64 {
	return math.Round(v/50) * 50
}

// TemplateFor returns the template for the equipment type at the capacity,
// preferring an exact match and falling back to the numerically closest
// capacity (ties resolve to the first encountered in catalog order).
func TemplateFor(templates []entities.EstimateSystem, capacity float64, equipment entities.EquipmentType) (entities.EstimateSystem, bool) {
	var best entities.EstimateSystem
	bestDist := math.MaxFloat64
	found := false
	for _, tpl := range templates {
		if tpl.EquipmentType != equipment {
			continue
		}
		if tpl.Tonnage == capacity {
			return tpl, true
		}
		if dist := math.Abs(tpl.Tonnage - capacity); dist < bestDist {
			bestDist = dist
			best = tpl
			found = true
		}
	}
	return best, found
}

// FurnaceBTUForTonnage maps a cooling tonnage to the typical furnace BTU
// target used when no explicit furnace BTU is set on the system.
func FurnaceBTUForTonnage(tonnage float64) float64 {
	switch {
	case tonnage < 2.0:
		return 40000
	case tonnage < 2.5:
		return 60000
	case tonnage < 3.5:
		return 80000
	case tonnage < 4.5:
		return 100000
	default:
		return 110000
	}
}

// constituent pairs an equipment type with its option for one tier, so the
// merge can route model codes through slot ownership.
type constituent struct {
	equipment entities.EquipmentType
	option    entities.SystemOption
}

// mergeTierOptions merges constituent options for one tier:
// price sums, SEER takes the max, the stage label comes from the first
// constituent, visibility ANDs, each model slot comes from its owner, the
// first non-empty warranty wins and advantages union with first-seen order.
func mergeTierOptions(tier entities.Tier, tonnage float64, parts []constituent) entities.SystemOption {
	merged := entities.SystemOption{
		ID:             uuid.NewString(),
		Tier:           tier,
		ShowToCustomer: true,
		Tonnage:        tonnage,
	}
	seen := map[string]bool{}
	for _, part := range parts {
		opt := part.option
		merged.Price += opt.Price
		if opt.Seer > merged.Seer {
			merged.Seer = opt.Seer
		}
		if merged.Stage == "" {
			merged.Stage = opt.Stage
		}
		merged.ShowToCustomer = merged.ShowToCustomer && opt.ShowToCustomer
		for _, slot := range part.equipment.OwnedModelSlots() {
			switch slot {
			case entities.ModelSlotOutdoor:
				if merged.OutdoorModel == "" {
					merged.OutdoorModel = opt.OutdoorModel
				}
			case entities.ModelSlotIndoor:
				if merged.IndoorModel == "" {
					merged.IndoorModel = opt.IndoorModel
				}
			case entities.ModelSlotFurnace:
				if merged.FurnaceModel == "" {
					merged.FurnaceModel = opt.FurnaceModel
				}
			}
		}
		if merged.WarrantyText == "" {
			merged.WarrantyText = opt.WarrantyText
		}
		for _, adv := range opt.Advantages {
			if !seen[adv] {
				seen[adv] = true
				merged.Advantages = append(merged.Advantages, adv)
			}
		}
	}
	return merged
}

// buildComposite merges the given single-part types at one capacity. A tier
// is omitted when any required constituent option is missing for it; the
// tier backfill in the estimate composer covers the gap downstream.
func buildComposite(templates []entities.EstimateSystem, tonnage float64, partTypes []entities.EquipmentType) ([]entities.SystemOption, bool) {
	partTemplates := make([]entities.EstimateSystem, 0, len(partTypes))
	for _, pt := range partTypes {
		tpl, ok := TemplateFor(templates, tonnage, pt)
		if !ok {
			return nil, false
		}
		partTemplates = append(partTemplates, tpl)
	}

	var merged []entities.SystemOption
	for _, tier := range entities.Tiers() {
		parts := make([]constituent, 0, len(partTemplates))
		complete := true
		for _, tpl := range partTemplates {
			opt, ok := tpl.OptionByTier(tier)
			if !ok {
				complete = false
				break
			}
			parts = append(parts, constituent{equipment: tpl.EquipmentType, option: opt})
		}
		if !complete {
			continue
		}
		merged = append(merged, mergeTierOptions(tier, tonnage, parts))
	}
	return merged, true
}

// BuildCondenserCoilComposite merges condenser and coil templates at the
// given tonnage into a priced multi-tier bundle.
func BuildCondenserCoilComposite(templates []entities.EstimateSystem, tonnage float64) (entities.EstimateSystem, bool) {
	options, ok := buildComposite(templates, tonnage, entities.EquipmentACCondenserCoil.Parts())
	if !ok {
		return entities.EstimateSystem{}, false
	}
	return entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          fmt.Sprintf("AC Condenser + Coil %s", FormatTonnage(tonnage)),
		Tonnage:       tonnage,
		EquipmentType: entities.EquipmentACCondenserCoil,
		Options:       options,
	}, true
}

// BuildHeatPumpAirHandlerComposite merges heat pump and air handler
// templates at the given tonnage.
func BuildHeatPumpAirHandlerComposite(templates []entities.EstimateSystem, tonnage float64) (entities.EstimateSystem, bool) {
	options, ok := buildComposite(templates, tonnage, entities.EquipmentHeatPumpAirHandler.Parts())
	if !ok {
		return entities.EstimateSystem{}, false
	}
	return entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          fmt.Sprintf("Heat Pump + Air Handler %s", FormatTonnage(tonnage)),
		Tonnage:       tonnage,
		EquipmentType: entities.EquipmentHeatPumpAirHandler,
		Options:       options,
	}, true
}

// BuildACFurnaceComposite builds condenser+coil at the tonnage and merges
// the result with the nearest furnace template at the tonnage-derived BTU
// target. When no furnace template exists the AC-only options are returned.
func BuildACFurnaceComposite(templates []entities.EstimateSystem, tonnage float64) (entities.EstimateSystem, bool) {
	sys, ok := buildFurnaceComposite(templates, tonnage, FurnaceBTUForTonnage(tonnage))
	if !ok {
		return entities.EstimateSystem{}, false
	}
	sys.Name = fmt.Sprintf("AC + Furnace %s", FormatTonnage(tonnage))
	sys.EquipmentType = entities.EquipmentACFurnace
	return sys, true
}

// BuildCondenserCoilFurnaceComposite is the explicit-BTU variant. A zero
// furnaceBTU falls back to the tonnage-derived target.
func BuildCondenserCoilFurnaceComposite(templates []entities.EstimateSystem, tonnage, furnaceBTU float64) (entities.EstimateSystem, bool) {
	target := furnaceBTU
	if target <= 0 {
		target = FurnaceBTUForTonnage(tonnage)
	}
	sys, ok := buildFurnaceComposite(templates, tonnage, target)
	if !ok {
		return entities.EstimateSystem{}, false
	}
	sys.Name = fmt.Sprintf("AC Condenser + Coil + Furnace %s • %s BTU", FormatTonnage(tonnage), groupThousands(int(target)))
	sys.EquipmentType = entities.EquipmentACCondenserCoilFurnace
	sys.FurnaceBTU = target
	return sys, true
}

func buildFurnaceComposite(templates []entities.EstimateSystem, tonnage, targetBTU float64) (entities.EstimateSystem, bool) {
	ac, ok := BuildCondenserCoilComposite(templates, tonnage)
	if !ok {
		return entities.EstimateSystem{}, false
	}
	furnace, ok := TemplateFor(templates, targetBTU, entities.EquipmentFurnaceOnly)
	if !ok {
		// No furnace templates at all: degrade to the AC bundle.
		return ac, true
	}

	var merged []entities.SystemOption
	for _, tier := range entities.Tiers() {
		acOpt, acOK := ac.OptionByTier(tier)
		fOpt, fOK := furnace.OptionByTier(tier)
		if !acOK || !fOK {
			continue
		}
		combined := mergeTierOptions(tier, tonnage, []constituent{
			{equipment: entities.EquipmentACCondenserCoil, option: acOpt},
			{equipment: entities.EquipmentFurnaceOnly, option: fOpt},
		})
		// The AC bundle already resolved outdoor/indoor slots.
		combined.OutdoorModel = acOpt.OutdoorModel
		combined.IndoorModel = acOpt.IndoorModel
		combined.Seer = acOpt.Seer
		if combined.FurnaceModel == "" {
			combined.FurnaceModel = "Furnace"
		}
		merged = append(merged, combined)
	}
	ac.Options = merged
	return ac, true
}
