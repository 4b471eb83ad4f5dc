package request

import (
	"testing"
	"time"

	"coolseason/internal/domain/entities"
)

func TestSizingRequest_ToDomain(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		r := SizingRequest{
			ClimateZone: 3,
			Floors: []FloorRequest{
				{Name: "Main", SquareFootage: 1600, FloorType: "main", NeedsCooling: true, NeedsHeating: true},
				{Name: "Upstairs", SquareFootage: 900, FloorType: "upper", NeedsCooling: true},
			},
		}
		zone, floors, err := r.ToDomain()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if zone != entities.Zone3 {
			t.Fatalf("expected zone 3, got %d", zone)
		}
		if len(floors) != 2 || floors[1].FloorType != entities.FloorUpper {
			t.Fatalf("unexpected floors: %+v", floors)
		}
	})

	t.Run("unknown climate zone", func(t *testing.T) {
		r := SizingRequest{ClimateZone: 9, Floors: []FloorRequest{{SquareFootage: 1000, FloorType: "main"}}}
		if _, _, err := r.ToDomain(); err != ErrInvalidClimateZone {
			t.Fatalf("expected ErrInvalidClimateZone, got %v", err)
		}
	})

	t.Run("unknown floor type", func(t *testing.T) {
		r := SizingRequest{ClimateZone: 3, Floors: []FloorRequest{{SquareFootage: 1000, FloorType: "attic"}}}
		if _, _, err := r.ToDomain(); err != ErrInvalidFloorType {
			t.Fatalf("expected ErrInvalidFloorType, got %v", err)
		}
	})
}

func TestCustomerRequest_ToUpdate(t *testing.T) {
	t.Run("date omitted stays zero", func(t *testing.T) {
		update := CustomerRequest{CustomerName: "Pat"}.ToUpdate()
		if update.CustomerName != "Pat" || !update.EstimateDate.IsZero() {
			t.Fatalf("unexpected update: %+v", update)
		}
	})

	t.Run("date provided is carried", func(t *testing.T) {
		date := time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC)
		update := CustomerRequest{CustomerName: "Pat", EstimateDate: &date}.ToUpdate()
		if !update.EstimateDate.Equal(date) {
			t.Fatalf("unexpected date: %v", update.EstimateDate)
		}
	})
}

func TestSystemMetaRequest_ToUpdate(t *testing.T) {
	tonnage := 4.0
	equipment := "heat_pump_air_handler"
	update := SystemMetaRequest{Tonnage: &tonnage, EquipmentType: &equipment}.ToUpdate()
	if update.Tonnage == nil || *update.Tonnage != 4.0 {
		t.Fatalf("expected tonnage pointer carried: %+v", update)
	}
	if update.EquipmentType == nil || *update.EquipmentType != entities.EquipmentHeatPumpAirHandler {
		t.Fatalf("expected equipment type converted: %+v", update)
	}
	if update.Name != nil {
		t.Fatalf("expected omitted fields to stay nil")
	}
}
