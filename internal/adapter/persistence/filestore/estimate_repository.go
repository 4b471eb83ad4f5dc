package filestore

import (
	"context"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"
)

const (
	currentEstimateDoc = "current_estimate"
	estimatesDoc       = "estimates"
)

// EstimateFileRepository keeps the working estimate and the estimates list
// as two JSON documents on disk. This is the default backend for single
// office deployments with no AWS footprint.

type EstimateFileRepository struct {
	store *Store
}

var _ interfaces.IEstimateRepository = (*EstimateFileRepository)(nil)

func NewEstimateFileRepository(store *Store) *EstimateFileRepository {
	return &EstimateFileRepository{store: store}
}

func (r *EstimateFileRepository) GetCurrent(_ context.Context) (entities.Estimate, error) {
	var est entities.Estimate
	if _, err := r.store.Read(currentEstimateDoc, &est); err != nil {
		return entities.Estimate{}, err
	}
	return est, nil
}

func (r *EstimateFileRepository) SaveCurrent(_ context.Context, e entities.Estimate) error {
	return r.store.Write(currentEstimateDoc, e)
}

func (r *EstimateFileRepository) List(_ context.Context) ([]entities.Estimate, error) {
	var list []entities.Estimate
	if _, err := r.store.Read(estimatesDoc, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *EstimateFileRepository) Upsert(ctx context.Context, e entities.Estimate) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range list {
		if list[i].ID == e.ID {
			list[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, e)
	}
	return r.store.Write(estimatesDoc, list)
}

func (r *EstimateFileRepository) Delete(ctx context.Context, id string) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := list[:0]
	for _, est := range list {
		if est.ID != id {
			kept = append(kept, est)
		}
	}
	if err := r.store.Write(estimatesDoc, kept); err != nil {
		return err
	}

	current, err := r.GetCurrent(ctx)
	if err != nil {
		return err
	}
	if current.ID == id {
		return r.store.Delete(currentEstimateDoc)
	}
	return nil
}
