package response

import "coolseason/internal/domain/entities"

type FloorResultResponse struct {
	FloorName             string  `json:"floor_name"`
	FloorType             string  `json:"floor_type"`
	RecommendedTonnage    float64 `json:"recommended_tonnage,omitempty"`
	RecommendedFurnaceBTU int     `json:"recommended_furnace_btu,omitempty"`
	Explanation           string  `json:"explanation"`
}

type SizingResponse struct {
	ClimateZone int                   `json:"climate_zone"`
	Results     []FloorResultResponse `json:"results"`
}

func FromFloorResults(zone entities.ClimateZone, results []entities.FloorResult) SizingResponse {
	out := make([]FloorResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, FloorResultResponse{
			FloorName:             r.FloorName,
			FloorType:             string(r.FloorType),
			RecommendedTonnage:    r.RecommendedTonnage,
			RecommendedFurnaceBTU: r.RecommendedFurnaceBTU,
			Explanation:           r.Explanation,
		})
	}
	return SizingResponse{ClimateZone: int(zone), Results: out}
}
