package response

import (
	"aquaflow/internal/domain/impact"
	"aquaflow/internal/usecase/queries"
)

type UsageEntryResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Date       int64  `json:"date"`
	LitresUsed string `json:"litres_used"`
	CreatedAt  int64  `json:"created_at"`
}

func FromUsageList(items []*queries.UsageEntryView) []*UsageEntryResponse {
	res := make([]*UsageEntryResponse, len(items))
	for i, it := range items {
		res[i] = &UsageEntryResponse{
			ID:         it.ID.String(),
			UserID:     it.UserID.String(),
			Date:       it.Date.Unix(),
			LitresUsed: it.LitresUsed,
			CreatedAt:  it.CreatedAt.Unix(),
		}
	}
	return res
}

type RecordUsageResponse struct {
	EntryID   string             `json:"entry_id"`
	EcoImpact *EcoImpactResponse `json:"eco_impact,omitempty"`
}

type EcoImpactResponse struct {
	ID                  string `json:"id"`
	UserID              string `json:"user_id"`
	PlasticBottlesSaved int64  `json:"plastic_bottles_saved"`
	CO2Reduced          string `json:"co2_reduced"`
	WaterSaved          string `json:"water_saved"`
	LastCalculated      int64  `json:"last_calculated"`
}

func FromEcoImpactSnapshot(s *impact.Snapshot) *EcoImpactResponse {
	return &EcoImpactResponse{
		ID:                  s.ID().String(),
		UserID:              s.UserID().String(),
		PlasticBottlesSaved: s.PlasticBottlesSaved(),
		CO2Reduced:          s.CO2Reduced().StringFixed(2),
		WaterSaved:          s.WaterSaved().StringFixed(2),
		LastCalculated:      s.LastCalculatedAt().Unix(),
	}
}

func FromEcoImpactView(v *queries.EcoImpactView) *EcoImpactResponse {
	return &EcoImpactResponse{
		ID:                  v.ID.String(),
		UserID:              v.UserID.String(),
		PlasticBottlesSaved: v.PlasticBottlesSaved,
		CO2Reduced:          v.CO2Reduced,
		WaterSaved:          v.WaterSaved,
		LastCalculated:      v.LastCalculated.Unix(),
	}
}
