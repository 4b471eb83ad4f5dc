package entities

// ClimateZone selects the cooling table and heating BTU range used for
// sizing. Zones run 1 (mild) through 5 (hot/cold extremes).
type ClimateZone int

const (
	Zone1 ClimateZone = 1
	Zone2 ClimateZone = 2
	Zone3 ClimateZone = 3
	Zone4 ClimateZone = 4
	Zone5 ClimateZone = 5
)

// Valid reports whether the zone is one of the five supported zones.
func (z ClimateZone) Valid() bool {
	return z >= Zone1 && z <= Zone5
}

// FloorType carries fixed area-adjustment multipliers, applied independently
// for cooling and heating before any table lookup.
type FloorType string

const (
	FloorMain     FloorType = "main"
	FloorUpper    FloorType = "upper"
	FloorBasement FloorType = "basement"
)

// Title returns the human-readable floor label used in explanations.
func (f FloorType) Title() string {
	switch f {
	case FloorMain:
		return "Main"
	case FloorUpper:
		return "Upper"
	case FloorBasement:
		return "Basement"
	}
	return string(f)
}

// FloorInput is one named floor area to size. At most three floors are
// accepted per sizing request.
type FloorInput struct {
	Name          string    `json:"name"`
	SquareFootage float64   `json:"square_footage"`
	FloorType     FloorType `json:"floor_type"`
	NeedsCooling  bool      `json:"needs_cooling"`
	NeedsHeating  bool      `json:"needs_heating"`
}

// FloorResult is the derived, read-only sizing output for one floor.
// Tonnage/BTU are zero when the respective sizing was not requested or no
// table row matched; results are transient and never persisted.
type FloorResult struct {
	FloorName             string    `json:"floor_name"`
	FloorType             FloorType `json:"floor_type"`
	RecommendedTonnage    float64   `json:"recommended_tonnage,omitempty"`
	RecommendedFurnaceBTU int       `json:"recommended_furnace_btu,omitempty"`
	Explanation           string    `json:"explanation"`
}
