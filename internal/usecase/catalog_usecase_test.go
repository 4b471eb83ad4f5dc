package usecase

import (
	"context"
	"errors"
	"testing"

	"coolseason/internal/domain/entities"
	mock_interfaces "coolseason/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDefaultSystemTemplates(t *testing.T) {
	templates := DefaultSystemTemplates()

	t.Run("covers every single-part type across the capacity steps", func(t *testing.T) {
		counts := map[entities.EquipmentType]int{}
		for _, tpl := range templates {
			counts[tpl.EquipmentType]++
		}
		require.Equal(t, len(catalogTonnages), counts[entities.EquipmentACCondenserOnly])
		require.Equal(t, len(catalogTonnages), counts[entities.EquipmentCoilOnly])
		require.Equal(t, len(catalogTonnages), counts[entities.EquipmentHeatPumpOnly])
		require.Equal(t, len(catalogTonnages), counts[entities.EquipmentAirHandlerOnly])
		require.Equal(t, len(catalogFurnaceBTUs), counts[entities.EquipmentFurnaceOnly])
	})

	t.Run("every template has three tiers priced to $50 steps", func(t *testing.T) {
		for _, tpl := range templates {
			require.Len(t, tpl.Options, 3, "template %s", tpl.Name)
			for _, opt := range tpl.Options {
				require.Positive(t, opt.Price)
				require.Zero(t, int(opt.Price)%50, "template %s tier %s price %.0f", tpl.Name, opt.Tier, opt.Price)
			}
		}
	})

	t.Run("reference condenser keeps its base rates", func(t *testing.T) {
		tpl, ok := TemplateFor(templates, 2.5, entities.EquipmentACCondenserOnly)
		require.True(t, ok)
		good, _ := tpl.OptionByTier(entities.TierGood)
		better, _ := tpl.OptionByTier(entities.TierBetter)
		best, _ := tpl.OptionByTier(entities.TierBest)
		require.Equal(t, 4200.0, good.Price)
		require.Equal(t, 5200.0, better.Price)
		require.Equal(t, 6400.0, best.Price)
		require.Equal(t, 14.0, good.Seer)
		require.Equal(t, 18.0, best.Seer)
	})

	t.Run("model codes are deterministic and slot-correct", func(t *testing.T) {
		a := DefaultSystemTemplates()
		b := DefaultSystemTemplates()
		tplA, _ := TemplateFor(a, 3, entities.EquipmentACCondenserOnly)
		tplB, _ := TemplateFor(b, 3, entities.EquipmentACCondenserOnly)
		for i := range tplA.Options {
			require.NotEmpty(t, tplA.Options[i].OutdoorModel)
			require.Empty(t, tplA.Options[i].IndoorModel)
			require.Equal(t, tplA.Options[i].OutdoorModel, tplB.Options[i].OutdoorModel)
		}
	})
}

func TestTemplateFor(t *testing.T) {
	templates := DefaultSystemTemplates()

	t.Run("exact capacity wins", func(t *testing.T) {
		tpl, ok := TemplateFor(templates, 3.5, entities.EquipmentHeatPumpOnly)
		require.True(t, ok)
		require.Equal(t, 3.5, tpl.Tonnage)
	})

	t.Run("falls back to the numerically closest capacity", func(t *testing.T) {
		tpl, ok := TemplateFor(templates, 4.6, entities.EquipmentACCondenserOnly)
		require.True(t, ok)
		require.Equal(t, 5.0, tpl.Tonnage)
	})

	t.Run("no templates of the type", func(t *testing.T) {
		_, ok := TemplateFor(nil, 3, entities.EquipmentACCondenserOnly)
		require.False(t, ok)
	})
}

func TestFurnaceBTUForTonnage(t *testing.T) {
	tests := []struct {
		tonnage float64
		want    float64
	}{
		{1.5, 40000},
		{2.0, 60000},
		{2.5, 80000},
		{3.0, 80000},
		{3.5, 100000},
		{4.0, 100000},
		{4.5, 110000},
		{5.0, 110000},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FurnaceBTUForTonnage(tt.tonnage), "tonnage %.1f", tt.tonnage)
	}
}

func TestCompositeBuilders(t *testing.T) {
	templates := DefaultSystemTemplates()

	t.Run("condenser+coil price is the constituent sum", func(t *testing.T) {
		composite, ok := BuildCondenserCoilComposite(templates, 3)
		require.True(t, ok)
		require.Len(t, composite.Options, 3)

		condenser, _ := TemplateFor(templates, 3, entities.EquipmentACCondenserOnly)
		coil, _ := TemplateFor(templates, 3, entities.EquipmentCoilOnly)
		for _, tier := range entities.Tiers() {
			merged, _ := composite.OptionByTier(tier)
			c, _ := condenser.OptionByTier(tier)
			k, _ := coil.OptionByTier(tier)
			require.Equal(t, c.Price+k.Price, merged.Price, "tier %s", tier)
			require.Equal(t, c.OutdoorModel, merged.OutdoorModel)
			require.Equal(t, k.IndoorModel, merged.IndoorModel)
			require.Empty(t, merged.FurnaceModel)
		}
	})

	t.Run("ac+furnace includes the tonnage-mapped furnace", func(t *testing.T) {
		composite, ok := BuildACFurnaceComposite(templates, 3)
		require.True(t, ok)
		require.Equal(t, entities.EquipmentACFurnace, composite.EquipmentType)

		ac, _ := BuildCondenserCoilComposite(templates, 3)
		furnace, _ := TemplateFor(templates, 80000, entities.EquipmentFurnaceOnly)
		for _, tier := range entities.Tiers() {
			merged, _ := composite.OptionByTier(tier)
			a, _ := ac.OptionByTier(tier)
			f, _ := furnace.OptionByTier(tier)
			require.Equal(t, a.Price+f.Price, merged.Price, "tier %s", tier)
			require.NotEmpty(t, merged.FurnaceModel)
			// SEER stays with the cooling side; the furnace contributes none.
			require.Equal(t, a.Seer, merged.Seer)
		}
	})

	t.Run("explicit furnace BTU overrides the tonnage mapping", func(t *testing.T) {
		composite, ok := BuildCondenserCoilFurnaceComposite(templates, 3, 100000)
		require.True(t, ok)
		require.Equal(t, 100000.0, composite.FurnaceBTU)

		defaulted, ok := BuildCondenserCoilFurnaceComposite(templates, 3, 0)
		require.True(t, ok)
		require.Equal(t, 80000.0, defaulted.FurnaceBTU)
	})

	t.Run("heat pump bundle owns both model slots", func(t *testing.T) {
		composite, ok := BuildHeatPumpAirHandlerComposite(templates, 2.5)
		require.True(t, ok)
		for _, opt := range composite.Options {
			require.NotEmpty(t, opt.OutdoorModel)
			require.NotEmpty(t, opt.IndoorModel)
			require.Empty(t, opt.FurnaceModel)
		}
	})

	t.Run("missing part template fails the build", func(t *testing.T) {
		var noCoils []entities.EstimateSystem
		for _, tpl := range templates {
			if tpl.EquipmentType != entities.EquipmentCoilOnly {
				noCoils = append(noCoils, tpl)
			}
		}
		_, ok := BuildCondenserCoilComposite(noCoils, 3)
		require.False(t, ok)
	})
}

func TestSeedMissingTemplates(t *testing.T) {
	t.Run("empty catalog seeds everything", func(t *testing.T) {
		seeded, changed := SeedMissingTemplates(nil)
		require.True(t, changed)
		require.Len(t, seeded, len(DefaultSystemTemplates()))
	})

	t.Run("seeding is idempotent", func(t *testing.T) {
		seeded, _ := SeedMissingTemplates(nil)
		again, changed := SeedMissingTemplates(seeded)
		require.False(t, changed)
		require.Len(t, again, len(seeded))
	})

	t.Run("custom templates survive a reseed", func(t *testing.T) {
		custom := newTemplate("Custom Condenser", entities.EquipmentACCondenserOnly, 2.5)
		custom.Options[0].Price = 9999
		seeded, changed := SeedMissingTemplates([]entities.EstimateSystem{custom})
		require.True(t, changed)
		require.Equal(t, 9999.0, seeded[0].Options[0].Price)
		// The 2.5-ton condenser slot is occupied, so no duplicate is added.
		require.Len(t, seeded, len(DefaultSystemTemplates()))
	})
}

func TestCatalogUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("SystemTemplates seeds and saves on first load", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().LoadSystemTemplates(gomock.Any()).Return(nil, nil)
		repo.EXPECT().SaveSystemTemplates(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewCatalogUseCase(repo)
		templates, err := uc.SystemTemplates(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		require.Len(t, templates, len(DefaultSystemTemplates()))
	})

	t.Run("a load failure falls back to defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().LoadAddOnTemplates(gomock.Any()).Return(nil, errors.New("disk"))
		repo.EXPECT().SaveAddOnTemplates(gomock.Any(), gomock.Any()).Return(nil)

		uc := NewCatalogUseCase(repo)
		templates, err := uc.AddOnTemplates(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		require.Len(t, templates, 3)
	})

	t.Run("ExportBundle scope addons omits systems", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		addOns := DefaultAddOnTemplates()
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().LoadAddOnTemplates(gomock.Any()).Return(addOns, nil)

		uc := NewCatalogUseCase(repo)
		bundle, err := uc.ExportBundle(ctx, "addons")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		require.Empty(t, bundle.SystemTemplates)
		require.Len(t, bundle.AddOnTemplates, len(addOns))
	})

	t.Run("ExportBundle rejects unknown scopes", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		uc := NewCatalogUseCase(mock_interfaces.NewMockICatalogRepository(ctrl))
		_, err := uc.ExportBundle(ctx, "everything")
		require.ErrorIs(t, err, ErrInvalidExportScope)
	})

	t.Run("ImportBundle rejects an empty bundle", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		uc := NewCatalogUseCase(mock_interfaces.NewMockICatalogRepository(ctrl))
		err := uc.ImportBundle(ctx, entities.TemplatesBundle{})
		require.ErrorIs(t, err, ErrEmptyTemplatesBundle)
	})

	t.Run("ImportBundle replaces both catalogs", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		systems := DefaultSystemTemplates()[:2]
		addOns := DefaultAddOnTemplates()[:1]
		repo := mock_interfaces.NewMockICatalogRepository(ctrl)
		repo.EXPECT().SaveSystemTemplates(gomock.Any(), systems).Return(nil)
		repo.EXPECT().SaveAddOnTemplates(gomock.Any(), addOns).Return(nil)

		uc := NewCatalogUseCase(repo)
		err := uc.ImportBundle(ctx, entities.TemplatesBundle{SystemTemplates: systems, AddOnTemplates: addOns})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
