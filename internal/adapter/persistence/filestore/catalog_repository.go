package filestore

import (
	"context"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase/interfaces"
)

const (
	systemTemplatesDoc = "system_templates"
	addOnTemplatesDoc  = "addon_templates"
)

// CatalogFileRepository keeps the two template catalogs as JSON documents.

type CatalogFileRepository struct {
	store *Store
}

var _ interfaces.ICatalogRepository = (*CatalogFileRepository)(nil)

func NewCatalogFileRepository(store *Store) *CatalogFileRepository {
	return &CatalogFileRepository{store: store}
}

func (r *CatalogFileRepository) LoadSystemTemplates(_ context.Context) ([]entities.EstimateSystem, error) {
	var templates []entities.EstimateSystem
	if _, err := r.store.Read(systemTemplatesDoc, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *CatalogFileRepository) SaveSystemTemplates(_ context.Context, templates []entities.EstimateSystem) error {
	return r.store.Write(systemTemplatesDoc, templates)
}

func (r *CatalogFileRepository) LoadAddOnTemplates(_ context.Context) ([]entities.AddOnTemplate, error) {
	var templates []entities.AddOnTemplate
	if _, err := r.store.Read(addOnTemplatesDoc, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *CatalogFileRepository) SaveAddOnTemplates(_ context.Context, templates []entities.AddOnTemplate) error {
	return r.store.Write(addOnTemplatesDoc, templates)
}
