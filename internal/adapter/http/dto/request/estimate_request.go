package request

import (
	"time"

	"coolseason/internal/domain/entities"
	"coolseason/internal/usecase"
)

// LoadEstimateRequest switches the current working estimate.
type LoadEstimateRequest struct {
	ID string `json:"id" binding:"required"`
}

// CustomerRequest replaces the estimate's customer header wholesale.
type CustomerRequest struct {
	CustomerName string     `json:"customer_name"`
	Address      string     `json:"address"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	EstimateDate *time.Time `json:"estimate_date"`
}

func (r CustomerRequest) ToUpdate() usecase.CustomerUpdate {
	update := usecase.CustomerUpdate{
		CustomerName: r.CustomerName,
		Address:      r.Address,
		Email:        r.Email,
		Phone:        r.Phone,
	}
	if r.EstimateDate != nil {
		update.EstimateDate = *r.EstimateDate
	}
	return update
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SignatureRequest carries the signature image; JSON []byte is base64 on
// the wire. An empty signature clears the stored one.
type SignatureRequest struct {
	Signature []byte `json:"signature"`
}

type AcceptProposalRequest struct {
	Tier string `json:"tier" binding:"required"`
}

type SystemCountRequest struct {
	Count int `json:"count" binding:"required"`
}

type AddSystemRequest struct {
	Name          string  `json:"name"`
	Tonnage       float64 `json:"tonnage" binding:"required,gt=0"`
	FurnaceBTU    float64 `json:"furnace_btu"`
	EquipmentType string  `json:"equipment_type" binding:"required"`
}

func (r AddSystemRequest) ToInput() usecase.AddSystemInput {
	return usecase.AddSystemInput{
		Name:          r.Name,
		Tonnage:       r.Tonnage,
		FurnaceBTU:    r.FurnaceBTU,
		EquipmentType: entities.EquipmentType(r.EquipmentType),
	}
}

// SystemMetaRequest is a partial update; omitted fields stay unchanged.
type SystemMetaRequest struct {
	Name          *string  `json:"name"`
	Tonnage       *float64 `json:"tonnage" binding:"omitempty,gt=0"`
	FurnaceBTU    *float64 `json:"furnace_btu" binding:"omitempty,gt=0"`
	EquipmentType *string  `json:"equipment_type" binding:"omitempty,oneof=ac_condenser_only coil_only heat_pump_only air_handler_only furnace_only ac_condenser_coil ac_condenser_coil_furnace ac_furnace heat_pump_air_handler"`

	ExistingBrand    *string `json:"existing_brand"`
	ExistingModel    *string `json:"existing_model"`
	ExistingAgeYears *int    `json:"existing_age_years"`
	ExistingLocation *string `json:"existing_location"`
	ExistingNotes    *string `json:"existing_notes"`
}

func (r SystemMetaRequest) ToUpdate() usecase.SystemMetaUpdate {
	update := usecase.SystemMetaUpdate{
		Name:             r.Name,
		Tonnage:          r.Tonnage,
		FurnaceBTU:       r.FurnaceBTU,
		ExistingBrand:    r.ExistingBrand,
		ExistingModel:    r.ExistingModel,
		ExistingAgeYears: r.ExistingAgeYears,
		ExistingLocation: r.ExistingLocation,
		ExistingNotes:    r.ExistingNotes,
	}
	if r.EquipmentType != nil {
		et := entities.EquipmentType(*r.EquipmentType)
		update.EquipmentType = &et
	}
	return update
}

// EnabledRequest toggles an enabled flag. The pointer distinguishes a
// missing field from an explicit false.
type EnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type VisibilityRequest struct {
	Show *bool `json:"show" binding:"required"`
}

type PriceRequest struct {
	Price *float64 `json:"price" binding:"required"`
}
