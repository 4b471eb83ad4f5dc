package response

import (
	"time"

	"coolseason/internal/domain/entities"
)

type SystemOptionResponse struct {
	ID                   string   `json:"id"`
	Tier                 string   `json:"tier"`
	TierLabel            string   `json:"tier_label"`
	ShowToCustomer       bool     `json:"show_to_customer"`
	IsSelectedByCustomer bool     `json:"is_selected_by_customer"`
	Seer                 float64  `json:"seer"`
	Stage                string   `json:"stage"`
	Tonnage              float64  `json:"tonnage"`
	Price                float64  `json:"price"`
	OutdoorModel         string   `json:"outdoor_model,omitempty"`
	IndoorModel          string   `json:"indoor_model,omitempty"`
	FurnaceModel         string   `json:"furnace_model,omitempty"`
	WarrantyText         string   `json:"warranty_text,omitempty"`
	Advantages           []string `json:"advantages,omitempty"`
}

type EstimateSystemResponse struct {
	ID            string `json:"id"`
	Enabled       bool   `json:"enabled"`
	Name          string `json:"name"`
	Tonnage       float64 `json:"tonnage"`
	FurnaceBTU    float64 `json:"furnace_btu,omitempty"`
	EquipmentType string  `json:"equipment_type"`

	ExistingBrand    string `json:"existing_brand,omitempty"`
	ExistingModel    string `json:"existing_model,omitempty"`
	ExistingAgeYears int    `json:"existing_age_years,omitempty"`
	ExistingLocation string `json:"existing_location,omitempty"`
	ExistingNotes    string `json:"existing_notes,omitempty"`

	Options []SystemOptionResponse `json:"options"`
}

type AddOnResponse struct {
	ID          string  `json:"id"`
	TemplateID  string  `json:"template_id,omitempty"`
	SystemID    string  `json:"system_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Enabled     bool    `json:"enabled"`
	Price       float64 `json:"price"`
}

type EstimateResponse struct {
	ID             string    `json:"id"`
	EstimateDate   time.Time `json:"estimate_date"`
	EstimateNumber string    `json:"estimate_number"`
	Status         string    `json:"status"`

	CustomerName string `json:"customer_name"`
	Address      string `json:"address"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`

	Systems []EstimateSystemResponse `json:"systems"`
	AddOns  []AddOnResponse          `json:"add_ons"`

	SystemsSubtotal float64 `json:"systems_subtotal"`
	AddOnsSubtotal  float64 `json:"add_ons_subtotal"`
	GrandTotal      float64 `json:"grand_total"`

	HasSignature bool `json:"has_signature"`
}

// EstimateListItemResponse is the compact shape used in listings.
type EstimateListItemResponse struct {
	ID             string    `json:"id"`
	EstimateDate   time.Time `json:"estimate_date"`
	EstimateNumber string    `json:"estimate_number"`
	Status         string    `json:"status"`
	CustomerName   string    `json:"customer_name"`
	GrandTotal     float64   `json:"grand_total"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	systems := make([]EstimateSystemResponse, 0, len(e.Systems))
	for _, sys := range e.Systems {
		systems = append(systems, fromSystem(sys))
	}
	addOns := make([]AddOnResponse, 0, len(e.AddOns))
	for _, a := range e.AddOns {
		addOns = append(addOns, AddOnResponse{
			ID:          a.ID,
			TemplateID:  a.TemplateID,
			SystemID:    a.SystemID,
			Name:        a.Name,
			Description: a.Description,
			Enabled:     a.Enabled,
			Price:       a.Price,
		})
	}
	return EstimateResponse{
		ID:              e.ID,
		EstimateDate:    e.EstimateDate,
		EstimateNumber:  e.EstimateNumber,
		Status:          string(e.Status),
		CustomerName:    e.CustomerName,
		Address:         e.Address,
		Email:           e.Email,
		Phone:           e.Phone,
		Systems:         systems,
		AddOns:          addOns,
		SystemsSubtotal: e.SystemsSubtotal,
		AddOnsSubtotal:  e.AddOnsSubtotal,
		GrandTotal:      e.GrandTotal,
		HasSignature:    len(e.CustomerSignature) > 0,
	}
}

func FromEstimateList(estimates []entities.Estimate) []EstimateListItemResponse {
	out := make([]EstimateListItemResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, EstimateListItemResponse{
			ID:             e.ID,
			EstimateDate:   e.EstimateDate,
			EstimateNumber: e.EstimateNumber,
			Status:         string(e.Status),
			CustomerName:   e.CustomerName,
			GrandTotal:     e.GrandTotal,
		})
	}
	return out
}

func fromSystem(s entities.EstimateSystem) EstimateSystemResponse {
	options := make([]SystemOptionResponse, 0, len(s.Options))
	for _, opt := range s.Options {
		options = append(options, SystemOptionResponse{
			ID:                   opt.ID,
			Tier:                 string(opt.Tier),
			TierLabel:            opt.Tier.DisplayName(),
			ShowToCustomer:       opt.ShowToCustomer,
			IsSelectedByCustomer: opt.IsSelectedByCustomer,
			Seer:                 opt.Seer,
			Stage:                opt.Stage,
			Tonnage:              opt.Tonnage,
			Price:                opt.Price,
			OutdoorModel:         opt.OutdoorModel,
			IndoorModel:          opt.IndoorModel,
			FurnaceModel:         opt.FurnaceModel,
			WarrantyText:         opt.WarrantyText,
			Advantages:           opt.Advantages,
		})
	}
	return EstimateSystemResponse{
		ID:               s.ID,
		Enabled:          s.Enabled,
		Name:             s.Name,
		Tonnage:          s.Tonnage,
		FurnaceBTU:       s.FurnaceBTU,
		EquipmentType:    string(s.EquipmentType),
		ExistingBrand:    s.ExistingBrand,
		ExistingModel:    s.ExistingModel,
		ExistingAgeYears: s.ExistingAgeYears,
		ExistingLocation: s.ExistingLocation,
		ExistingNotes:    s.ExistingNotes,
		Options:          options,
	}
}
