package usecase

import (
	"fmt"
	"math"
	"strings"

	"coolseason/internal/domain/entities"
)

// SizingEngine translates floor square footage and climate zone into a
// recommended cooling tonnage and standard furnace size.
//
// This is a pre-Manual-J approximation for sales conversations, not an
// engineering calculation. Lookups that miss return zero values rather than
// errors; the only "no result" case is an unknown climate zone.

type ISizingEngine interface {
	SizeFloors(zone entities.ClimateZone, floors []entities.FloorInput) []entities.FloorResult
	FindCoolingTonnage(zone entities.ClimateZone, adjustedSqft float64) (float64, string, bool)
	FindHeatingBTU(zone entities.ClimateZone, sqft float64, floorType entities.FloorType) (int, string, bool)
}

type SizingEngine struct{}

var _ ISizingEngine = (*SizingEngine)(nil)

func NewSizingEngine() *SizingEngine {
	return &SizingEngine{}
}

// coolingBand maps one tonnage step to an inclusive square-footage range.
type coolingBand struct {
	tons float64
	min  int
	max  int
}

// Cooling tables per climate zone. Bands are non-overlapping and ascend with
// tonnage; warmer zones tolerate more square footage per ton. Kept as ordered
// slices so the nearest-band fallback is deterministic (ascending tonnage).
var coolingTables = map[entities.ClimateZone][]coolingBand{
	entities.Zone1: {
		{1.5, 600, 900}, {2.0, 901, 1200}, {2.5, 1201, 1500}, {3.0, 1501, 1800},
		{3.5, 1801, 2100}, {4.0, 2101, 2400}, {5.0, 2401, 3000},
	},
	entities.Zone2: {
		{1.5, 600, 950}, {2.0, 951, 1250}, {2.5, 1251, 1550}, {3.0, 1551, 1850},
		{3.5, 1851, 2150}, {4.0, 2151, 2500}, {5.0, 2501, 3100},
	},
	entities.Zone3: {
		{1.5, 600, 1000}, {2.0, 1001, 1300}, {2.5, 1301, 1600}, {3.0, 1601, 1900},
		{3.5, 1901, 2200}, {4.0, 2201, 2600}, {5.0, 2601, 3200},
	},
	entities.Zone4: {
		{1.5, 700, 1050}, {2.0, 1051, 1350}, {2.5, 1351, 1600}, {3.0, 1601, 2000},
		{3.5, 2001, 2250}, {4.0, 2251, 2700}, {5.0, 2751, 3300},
	},
	entities.Zone5: {
		{1.5, 700, 1100}, {2.0, 1101, 1400}, {2.5, 1401, 1650}, {3.0, 1651, 2100},
		{3.5, 2101, 2300}, {4.0, 2301, 2700}, {5.0, 2701, 3300},
	},
}

// Heating BTU per square foot ranges by zone.
var heatingRanges = map[entities.ClimateZone]struct{ min, max int }{
	entities.Zone1: {30, 35},
	entities.Zone2: {35, 40},
	entities.Zone3: {40, 45},
	entities.Zone4: {45, 50},
	entities.Zone5: {50, 60},
}

var standardFurnaceSizes = []int{45000, 60000, 70000, 80000, 90000, 100000, 120000}

// AdjustCoolingSqft applies the cooling area-adjustment multiplier. Upper
// floors carry more radiant gain; basements carry less envelope load.
func AdjustCoolingSqft(sqft float64, floorType entities.FloorType) float64 {
	switch floorType {
	case entities.FloorUpper:
		return sqft * 1.15
	case entities.FloorBasement:
		return sqft * 0.8
	}
	return sqft
}

// AdjustHeatingSqft applies the heating area-adjustment multiplier.
func AdjustHeatingSqft(sqft float64, floorType entities.FloorType) float64 {
	switch floorType {
	case entities.FloorUpper:
		return sqft * 1.10
	case entities.FloorBasement:
		return sqft * 0.85
	}
	return sqft
}

// FindCoolingTonnage returns the tonnage whose band contains the adjusted
// square footage, or the band with the numerically closest midpoint when
// nothing contains it. The bool is false only for an unknown zone.
func (s *SizingEngine) FindCoolingTonnage(zone entities.ClimateZone, adjustedSqft float64) (float64, string, bool) {
	table, ok := coolingTables[zone]
	if !ok {
		return 0, "", false
	}

	var best coolingBand
	bestDistance := math.MaxFloat64
	for _, band := range table {
		if adjustedSqft >= float64(band.min) && adjustedSqft <= float64(band.max) {
			expl := fmt.Sprintf("Adjusted %d sq ft falls in the %.1f-ton range (%d–%d sq ft) for Zone %d.",
				int(math.Round(adjustedSqft)), band.tons, band.min, band.max, zone)
			return band.tons, expl, true
		}
		center := float64(band.min+band.max) / 2.0
		if dist := math.Abs(adjustedSqft - center); dist < bestDistance {
			bestDistance = dist
			best = band
		}
	}

	expl := fmt.Sprintf("Adjusted %d sq ft is outside standard ranges; closest is %.1f tons (%d–%d sq ft) for Zone %d.",
		int(math.Round(adjustedSqft)), best.tons, best.min, best.max, zone)
	return best.tons, expl, true
}

// FindHeatingBTU estimates the heat loss range for the floor and picks the
// smallest standard furnace size covering the minimum load, falling back to
// the largest size when the load exceeds every standard size.
func (s *SizingEngine) FindHeatingBTU(zone entities.ClimateZone, sqft float64, floorType entities.FloorType) (int, string, bool) {
	hr, ok := heatingRanges[zone]
	if !ok {
		return 0, "", false
	}

	adj := AdjustHeatingSqft(sqft, floorType)
	minBTU := adj * float64(hr.min)
	maxBTU := adj * float64(hr.max)

	chosen := standardFurnaceSizes[len(standardFurnaceSizes)-1]
	for _, size := range standardFurnaceSizes {
		if float64(size) >= minBTU {
			chosen = size
			break
		}
	}

	expl := fmt.Sprintf("Estimated heat loss for Zone %d: %s–%s BTU (adjusted for %s floor). Selected %s BTU as the nearest standard furnace size.",
		zone,
		groupThousands(int(math.Round(minBTU))),
		groupThousands(int(math.Round(maxBTU))),
		strings.ToLower(floorType.Title()),
		groupThousands(chosen))
	return chosen, expl, true
}

// SizeFloors runs the requested lookups per floor. Floors requesting neither
// cooling nor heating are skipped; an empty result set is a valid outcome.
func (s *SizingEngine) SizeFloors(zone entities.ClimateZone, floors []entities.FloorInput) []entities.FloorResult {
	var results []entities.FloorResult
	for _, f := range floors {
		if !f.NeedsCooling && !f.NeedsHeating {
			continue
		}

		var result entities.FloorResult
		result.FloorName = f.Name
		result.FloorType = f.FloorType

		explanation := ""
		if f.NeedsCooling {
			adj := AdjustCoolingSqft(f.SquareFootage, f.FloorType)
			if tons, expl, ok := s.FindCoolingTonnage(zone, adj); ok {
				result.RecommendedTonnage = tons
				explanation = expl
			}
		}
		if f.NeedsHeating {
			if btu, expl, ok := s.FindHeatingBTU(zone, f.SquareFootage, f.FloorType); ok {
				result.RecommendedFurnaceBTU = btu
				if explanation != "" {
					explanation += " "
				}
				explanation += expl
			}
		}
		result.Explanation = explanation
		results = append(results, result)
	}
	return results
}
