package interfaces

import (
	"context"

	"coolseason/internal/domain/entities"
)

// ICatalogRepository abstracts persistence for the template catalogs.
//
// Contract:
//   - Load returns (nil, nil) when no snapshot exists yet; callers fall back
//     to generated defaults.
//   - Save writes a durable point-in-time snapshot of the whole catalog.

type ICatalogRepository interface {
	LoadSystemTemplates(ctx context.Context) ([]entities.EstimateSystem, error)
	SaveSystemTemplates(ctx context.Context, templates []entities.EstimateSystem) error
	LoadAddOnTemplates(ctx context.Context) ([]entities.AddOnTemplate, error)
	SaveAddOnTemplates(ctx context.Context, templates []entities.AddOnTemplate) error
}
