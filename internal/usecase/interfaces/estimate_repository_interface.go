package interfaces

import (
	"context"

	"coolseason/internal/domain/entities"
)

// IEstimateRepository abstracts persistence for estimates.
//
// The service must be able to:
//   - load and save the current working estimate snapshot
//   - keep the estimates list in sync (upsert by id on every current change)
//   - list and delete historical estimates
//
// GetCurrent returns a zero-ID estimate when no snapshot exists.

type IEstimateRepository interface {
	GetCurrent(ctx context.Context) (entities.Estimate, error)
	SaveCurrent(ctx context.Context, e entities.Estimate) error
	List(ctx context.Context) ([]entities.Estimate, error)
	Upsert(ctx context.Context, e entities.Estimate) error
	Delete(ctx context.Context, id string) error
}
