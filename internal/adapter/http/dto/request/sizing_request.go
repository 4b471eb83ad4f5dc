package request

import (
	"errors"

	"coolseason/internal/domain/entities"
)

var (
	ErrInvalidClimateZone = errors.New("invalid climate zone")
	ErrInvalidFloorType   = errors.New("invalid floor type")
)

type FloorRequest struct {
	Name          string  `json:"name"`
	SquareFootage float64 `json:"square_footage" binding:"required,gt=0"`
	FloorType     string  `json:"floor_type" binding:"required"`
	NeedsCooling  bool    `json:"needs_cooling"`
	NeedsHeating  bool    `json:"needs_heating"`
}

// SizingRequest sizes a set of floors for one climate zone.
type SizingRequest struct {
	ClimateZone int            `json:"climate_zone" binding:"required"`
	Floors      []FloorRequest `json:"floors" binding:"required,min=1,max=3,dive"`
}

// ToDomain validates and converts the payload into domain inputs.
func (r SizingRequest) ToDomain() (entities.ClimateZone, []entities.FloorInput, error) {
	zone := entities.ClimateZone(r.ClimateZone)
	if !zone.Valid() {
		return 0, nil, ErrInvalidClimateZone
	}

	floors := make([]entities.FloorInput, 0, len(r.Floors))
	for _, f := range r.Floors {
		ft := entities.FloorType(f.FloorType)
		switch ft {
		case entities.FloorMain, entities.FloorUpper, entities.FloorBasement:
		default:
			return 0, nil, ErrInvalidFloorType
		}
		floors = append(floors, entities.FloorInput{
			Name:          f.Name,
			SquareFootage: f.SquareFootage,
			FloorType:     ft,
			NeedsCooling:  f.NeedsCooling,
			NeedsHeating:  f.NeedsHeating,
		})
	}
	return zone, floors, nil
}
