package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound   = errors.New("estimate not found")
	ErrSystemNotFound     = errors.New("system not found")
	ErrOptionNotFound     = errors.New("option not found")
	ErrAddOnNotFound      = errors.New("add-on not found")
	ErrTemplateNotFound   = errors.New("no template matches the requested configuration")
	ErrInvalidTier        = errors.New("invalid tier")
	ErrInvalidStatus      = errors.New("invalid estimate status")
	ErrInvalidSystemCount = errors.New("system count out of range")
)

// Bounds for EnsureSystemCount. A residential job never quotes more than a
// handful of systems; the cap keeps a bad request from exploding the estimate.
const (
	minSystemCount = 1
	maxSystemCount = 10
)

// Default configuration used when growing an estimate to a target system
// count: a 3-ton AC + furnace bundle is the most common residential job.
const defaultSystemTonnage = 3.0

// CustomerUpdate carries the customer header fields for an estimate.
// All fields are applied wholesale.
type CustomerUpdate struct {
	CustomerName string
	Address      string
	Email        string
	Phone        string
	EstimateDate time.Time
}

// SystemMetaUpdate is a partial update of a system's identity fields.
// Nil pointers leave the current value untouched. Changing capacity or
// equipment type rebuilds the tier options from the catalog, which clears
// any customer selection on that system.
type SystemMetaUpdate struct {
	Name          *string
	Tonnage       *float64
	FurnaceBTU    *float64
	EquipmentType *entities.EquipmentType

	ExistingBrand    *string
	ExistingModel    *string
	ExistingAgeYears *int
	ExistingLocation *string
	ExistingNotes    *string
}

// AddSystemInput describes a system to append to the current estimate.
type AddSystemInput struct {
	Name          string
	Tonnage       float64
	FurnaceBTU    float64
	EquipmentType entities.EquipmentType
}

// IEstimateUseCase is the single mutation surface for estimates. Every
// mutation recomputes totals and persists exactly once (current snapshot +
// list upsert), so reads never observe stale totals.

type IEstimateUseCase interface {
	Current(ctx context.Context) (entities.Estimate, error)
	StartNew(ctx context.Context) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	Load(ctx context.Context, id string) (entities.Estimate, error)
	Delete(ctx context.Context, id string) (entities.Estimate, error)

	UpdateCustomer(ctx context.Context, update CustomerUpdate) (entities.Estimate, error)
	SetStatus(ctx context.Context, status entities.EstimateStatus) (entities.Estimate, error)
	UpdateSignature(ctx context.Context, signature []byte) (entities.Estimate, error)
	AcceptProposal(ctx context.Context, tier entities.Tier) (entities.Estimate, error)

	AddSystem(ctx context.Context, input AddSystemInput) (entities.Estimate, error)
	RemoveSystem(ctx context.Context, systemID string) (entities.Estimate, error)
	EnsureSystemCount(ctx context.Context, count int) (entities.Estimate, error)
	UpdateSystemMeta(ctx context.Context, systemID string, update SystemMetaUpdate) (entities.Estimate, error)
	SetSystemEnabled(ctx context.Context, systemID string, enabled bool) (entities.Estimate, error)

	SelectOption(ctx context.Context, systemID, optionID string) (entities.Estimate, error)
	ToggleOption(ctx context.Context, systemID, optionID string) (entities.Estimate, error)
	SetOptionVisibility(ctx context.Context, systemID, optionID string, show bool) (entities.Estimate, error)

	SyncWithTemplates(ctx context.Context) (entities.Estimate, error)
	AttachAddOns(ctx context.Context) (entities.Estimate, error)
	SetAddOnEnabled(ctx context.Context, addOnID string, enabled bool) (entities.Estimate, error)
	SetAddOnPrice(ctx context.Context, addOnID string, price float64) (entities.Estimate, error)

	TextSummary(ctx context.Context) (string, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	catalog ICatalogUseCase
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, catalog ICatalogUseCase) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, catalog: catalog}
}

// Current returns the working estimate, creating and persisting a fresh one
// when no snapshot exists yet.
func (u *EstimateUseCase) Current(ctx context.Context) (entities.Estimate, error) {
	est, err := u.repo.GetCurrent(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if est.ID != "" {
		return est, nil
	}
	log.Printf("[estimate] no current estimate, starting a new one")
	return u.StartNew(ctx)
}

// StartNew creates a fresh estimate with the next CS sequence number, one
// default system and the catalog add-ons attached, and makes it current.
func (u *EstimateUseCase) StartNew(ctx context.Context) (entities.Estimate, error) {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	templates, err := u.catalog.SystemTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	est := entities.Estimate{
		ID:             uuid.NewString(),
		EstimateDate:   time.Now().UTC(),
		EstimateNumber: NextEstimateNumber(existing),
		Status:         entities.EstimateStatusPending,
	}
	est.Systems = append(est.Systems, u.defaultSystem(templates, fmt.Sprintf("System #%d", 1)))
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

func (u *EstimateUseCase) List(ctx context.Context) ([]entities.Estimate, error) {
	return u.repo.List(ctx)
}

// Load makes the estimate with the given id the current one.
func (u *EstimateUseCase) Load(ctx context.Context, id string) (entities.Estimate, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	for _, est := range list {
		if est.ID == id {
			if err := u.repo.SaveCurrent(ctx, est); err != nil {
				return entities.Estimate{}, err
			}
			return est, nil
		}
	}
	return entities.Estimate{}, ErrEstimateNotFound
}

// Delete removes the estimate from the list. When the current estimate was
// deleted, the first remaining estimate becomes current; with none left a
// fresh estimate is started. Returns the resulting current estimate.
func (u *EstimateUseCase) Delete(ctx context.Context, id string) (entities.Estimate, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	found := false
	for _, est := range list {
		if est.ID == id {
			found = true
			break
		}
	}
	if !found {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return entities.Estimate{}, err
	}

	current, err := u.repo.GetCurrent(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if current.ID != id {
		return current, nil
	}
	remaining, err := u.repo.List(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(remaining) == 0 {
		return u.StartNew(ctx)
	}
	next := remaining[0]
	if err := u.repo.SaveCurrent(ctx, next); err != nil {
		return entities.Estimate{}, err
	}
	return next, nil
}

func (u *EstimateUseCase) UpdateCustomer(ctx context.Context, update CustomerUpdate) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		est.CustomerName = update.CustomerName
		est.Address = update.Address
		est.Email = update.Email
		est.Phone = update.Phone
		if !update.EstimateDate.IsZero() {
			est.EstimateDate = update.EstimateDate
		}
		return est, nil
	})
}

func (u *EstimateUseCase) SetStatus(ctx context.Context, status entities.EstimateStatus) (entities.Estimate, error) {
	if status != entities.EstimateStatusPending && status != entities.EstimateStatusApproved {
		return entities.Estimate{}, ErrInvalidStatus
	}
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		est.Status = status
		return est, nil
	})
}

// UpdateSignature stores the captured signature image. A nil signature
// clears it.
func (u *EstimateUseCase) UpdateSignature(ctx context.Context, signature []byte) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		est.CustomerSignature = signature
		return est, nil
	})
}

// AcceptProposal selects the given tier across every system, enabled or
// not, so no stale selection on a disabled system can keep free-when-best
// pricing in effect. Approval is a separate SetStatus call.
func (u *EstimateUseCase) AcceptProposal(ctx context.Context, tier entities.Tier) (entities.Estimate, error) {
	if tier.Rank() < 0 {
		return entities.Estimate{}, ErrInvalidTier
	}
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		for i := range est.Systems {
			for j := range est.Systems[i].Options {
				est.Systems[i].Options[j].IsSelectedByCustomer = est.Systems[i].Options[j].Tier == tier
			}
		}
		return est, nil
	})
}

// AddSystem appends a system built from the catalog at the requested
// capacity and equipment type, then refreshes the add-on pairs.
func (u *EstimateUseCase) AddSystem(ctx context.Context, input AddSystemInput) (entities.Estimate, error) {
	templates, err := u.catalog.SystemTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	sys := entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          input.Name,
		Tonnage:       input.Tonnage,
		FurnaceBTU:    input.FurnaceBTU,
		EquipmentType: input.EquipmentType,
	}
	sys.Options = BuildOptionsForSystem(templates, sys)
	if len(sys.Options) == 0 {
		return entities.Estimate{}, ErrTemplateNotFound
	}
	if sys.Name == "" {
		sys.Name = fmt.Sprintf("%s %s", sys.EquipmentType.DisplayName(), FormatCapacity(sys.Tonnage, sys.EquipmentType))
	}

	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est.Systems = append(est.Systems, sys)
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

// RemoveSystem drops the system and prunes its add-on pairs.
func (u *EstimateUseCase) RemoveSystem(ctx context.Context, systemID string) (entities.Estimate, error) {
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	idx := est.SystemByID(systemID)
	if idx < 0 {
		return entities.Estimate{}, ErrSystemNotFound
	}
	est.Systems = append(est.Systems[:idx], est.Systems[idx+1:]...)
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

// EnsureSystemCount grows or shrinks the estimate to exactly count systems.
// Growth appends default-configuration systems; shrink drops from the end.
func (u *EstimateUseCase) EnsureSystemCount(ctx context.Context, count int) (entities.Estimate, error) {
	if count < minSystemCount || count > maxSystemCount {
		return entities.Estimate{}, ErrInvalidSystemCount
	}
	templates, err := u.catalog.SystemTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(est.Systems) == count {
		return est, nil
	}
	for len(est.Systems) < count {
		est.Systems = append(est.Systems, u.defaultSystem(templates, fmt.Sprintf("System #%d", len(est.Systems)+1)))
	}
	if len(est.Systems) > count {
		est.Systems = est.Systems[:count]
	}
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

// UpdateSystemMeta applies the partial update. When capacity, furnace BTU
// or equipment type change, the system's options are rebuilt from the
// catalog and any selection on the system is cleared.
func (u *EstimateUseCase) UpdateSystemMeta(ctx context.Context, systemID string, update SystemMetaUpdate) (entities.Estimate, error) {
	templates, err := u.catalog.SystemTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		idx := est.SystemByID(systemID)
		if idx < 0 {
			return entities.Estimate{}, ErrSystemNotFound
		}
		sys := &est.Systems[idx]

		rebuild := false
		if update.Name != nil {
			sys.Name = *update.Name
		}
		if update.Tonnage != nil && *update.Tonnage != sys.Tonnage {
			sys.Tonnage = *update.Tonnage
			rebuild = true
		}
		if update.FurnaceBTU != nil && *update.FurnaceBTU != sys.FurnaceBTU {
			sys.FurnaceBTU = *update.FurnaceBTU
			rebuild = true
		}
		if update.EquipmentType != nil && *update.EquipmentType != sys.EquipmentType {
			sys.EquipmentType = *update.EquipmentType
			rebuild = true
		}
		if update.ExistingBrand != nil {
			sys.ExistingBrand = *update.ExistingBrand
		}
		if update.ExistingModel != nil {
			sys.ExistingModel = *update.ExistingModel
		}
		if update.ExistingAgeYears != nil {
			sys.ExistingAgeYears = *update.ExistingAgeYears
		}
		if update.ExistingLocation != nil {
			sys.ExistingLocation = *update.ExistingLocation
		}
		if update.ExistingNotes != nil {
			sys.ExistingNotes = *update.ExistingNotes
		}

		if rebuild {
			// An unknown equipment type or off-catalog capacity would wipe
			// the tiers; reject the update instead of persisting a system
			// with no options.
			rebuilt := BuildOptionsForSystem(templates, *sys)
			if len(rebuilt) == 0 {
				return entities.Estimate{}, ErrTemplateNotFound
			}
			sys.Options = rebuilt
		}
		return est, nil
	})
}

func (u *EstimateUseCase) SetSystemEnabled(ctx context.Context, systemID string, enabled bool) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		idx := est.SystemByID(systemID)
		if idx < 0 {
			return entities.Estimate{}, ErrSystemNotFound
		}
		est.Systems[idx].Enabled = enabled
		return est, nil
	})
}

// SelectOption applies radio semantics: the chosen option becomes the
// system's only selection.
func (u *EstimateUseCase) SelectOption(ctx context.Context, systemID, optionID string) (entities.Estimate, error) {
	return u.mutateOption(ctx, systemID, optionID, func(sys *entities.EstimateSystem, idx int) {
		for j := range sys.Options {
			sys.Options[j].IsSelectedByCustomer = j == idx
		}
	})
}

// ToggleOption applies checkbox semantics: the option's selection flips and
// other options keep their flags. Totals still count only the first
// selected option in tier order.
func (u *EstimateUseCase) ToggleOption(ctx context.Context, systemID, optionID string) (entities.Estimate, error) {
	return u.mutateOption(ctx, systemID, optionID, func(sys *entities.EstimateSystem, idx int) {
		sys.Options[idx].IsSelectedByCustomer = !sys.Options[idx].IsSelectedByCustomer
	})
}

func (u *EstimateUseCase) SetOptionVisibility(ctx context.Context, systemID, optionID string, show bool) (entities.Estimate, error) {
	return u.mutateOption(ctx, systemID, optionID, func(sys *entities.EstimateSystem, idx int) {
		sys.Options[idx].ShowToCustomer = show
	})
}

// SyncWithTemplates re-derives every system's options from the current
// catalog snapshot and refreshes add-on pairs, preserving ids, visibility
// and selections per tier.
func (u *EstimateUseCase) SyncWithTemplates(ctx context.Context) (entities.Estimate, error) {
	templates, err := u.catalog.SystemTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est = SyncSystemsWithTemplates(est, templates)
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

// AttachAddOns refreshes the add-on pairs from the catalog without touching
// system options.
func (u *EstimateUseCase) AttachAddOns(ctx context.Context) (entities.Estimate, error) {
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est = AttachAddOnTemplates(est, addOnTemplates)
	return u.finalize(ctx, est, addOnTemplates)
}

func (u *EstimateUseCase) SetAddOnEnabled(ctx context.Context, addOnID string, enabled bool) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		for i := range est.AddOns {
			if est.AddOns[i].ID == addOnID {
				est.AddOns[i].Enabled = enabled
				return est, nil
			}
		}
		return entities.Estimate{}, ErrAddOnNotFound
	})
}

// SetAddOnPrice is the manual price override. It survives totals
// recalculation but not a catalog refresh, and free-when-best still wins
// while a best tier is selected.
func (u *EstimateUseCase) SetAddOnPrice(ctx context.Context, addOnID string, price float64) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		for i := range est.AddOns {
			if est.AddOns[i].ID == addOnID {
				est.AddOns[i].Price = price
				return est, nil
			}
		}
		return entities.Estimate{}, ErrAddOnNotFound
	})
}

func (u *EstimateUseCase) TextSummary(ctx context.Context) (string, error) {
	est, err := u.Current(ctx)
	if err != nil {
		return "", err
	}
	return BuildTextSummary(est), nil
}

// mutate runs fn against the current estimate and finalizes the result.
func (u *EstimateUseCase) mutate(ctx context.Context, fn func(entities.Estimate) (entities.Estimate, error)) (entities.Estimate, error) {
	est, err := u.Current(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	est, err = fn(est)
	if err != nil {
		return entities.Estimate{}, err
	}
	addOnTemplates, err := u.catalog.AddOnTemplates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	return u.finalize(ctx, est, addOnTemplates)
}

func (u *EstimateUseCase) mutateOption(ctx context.Context, systemID, optionID string, apply func(sys *entities.EstimateSystem, idx int)) (entities.Estimate, error) {
	return u.mutate(ctx, func(est entities.Estimate) (entities.Estimate, error) {
		sysIdx := est.SystemByID(systemID)
		if sysIdx < 0 {
			return entities.Estimate{}, ErrSystemNotFound
		}
		sys := &est.Systems[sysIdx]
		for i := range sys.Options {
			if sys.Options[i].ID == optionID {
				apply(sys, i)
				return est, nil
			}
		}
		return entities.Estimate{}, ErrOptionNotFound
	})
}

// finalize recomputes totals and persists the estimate once: current
// snapshot plus list upsert.
func (u *EstimateUseCase) finalize(ctx context.Context, est entities.Estimate, addOnTemplates []entities.AddOnTemplate) (entities.Estimate, error) {
	freeWhenBest := make(map[string]bool, len(addOnTemplates))
	for _, tmpl := range addOnTemplates {
		if tmpl.FreeWhenTierIsBest {
			freeWhenBest[tmpl.ID] = true
		}
	}
	est = RecalculateTotals(est, freeWhenBest)
	if err := u.repo.SaveCurrent(ctx, est); err != nil {
		return entities.Estimate{}, err
	}
	if err := u.repo.Upsert(ctx, est); err != nil {
		return entities.Estimate{}, err
	}
	return est, nil
}

// defaultSystem builds the standard growth system. When even the seeded
// catalog cannot produce a bundle the system is created without options.
func (u *EstimateUseCase) defaultSystem(templates []entities.EstimateSystem, name string) entities.EstimateSystem {
	sys := entities.EstimateSystem{
		ID:            uuid.NewString(),
		Enabled:       true,
		Name:          name,
		Tonnage:       defaultSystemTonnage,
		EquipmentType: entities.EquipmentACFurnace,
	}
	sys.Options = BuildOptionsForSystem(templates, sys)
	return sys
}
