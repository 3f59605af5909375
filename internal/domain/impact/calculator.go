package impact

import (
	"time"

	"aquaflow/internal/domain/usage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Conversion constants for the eco-impact metrics.
const (
	// 500ml bottles displaced per litre of filtered water
	bottlesPerLitre = 2
	// kg of CO2 avoided per plastic bottle not produced
	co2PerBottleKg = 0.082
	// bottled-water production uses roughly 3x the water delivered
	waterSavingsMultiplier = 3
)

var (
	bottlesPerLitreDec = decimal.NewFromInt(bottlesPerLitre)
	co2PerBottleDec    = decimal.NewFromFloat(co2PerBottleKg)
	waterMultiplierDec = decimal.NewFromInt(waterSavingsMultiplier)
)

// Snapshot is the singleton-per-user cache of the derived metrics.
// Its values are always a pure function of the user's full usage
// history at lastCalculatedAt; it is never authored independently.
type Snapshot struct {
	id                  uuid.UUID
	userID              uuid.UUID
	plasticBottlesSaved int64
	co2Reduced          decimal.Decimal
	waterSaved          decimal.Decimal
	lastCalculatedAt    time.Time
}

func ReconstructSnapshot(id, userID uuid.UUID, bottles int64, co2, water decimal.Decimal, calculatedAt time.Time) *Snapshot {
	return &Snapshot{
		id:                  id,
		userID:              userID,
		plasticBottlesSaved: bottles,
		co2Reduced:          co2,
		waterSaved:          water,
		lastCalculatedAt:    calculatedAt,
	}
}

func (s *Snapshot) ID() uuid.UUID              { return s.id }
func (s *Snapshot) UserID() uuid.UUID          { return s.userID }
func (s *Snapshot) PlasticBottlesSaved() int64 { return s.plasticBottlesSaved }
func (s *Snapshot) CO2Reduced() decimal.Decimal {
	return s.co2Reduced
}
func (s *Snapshot) WaterSaved() decimal.Decimal {
	return s.waterSaved
}
func (s *Snapshot) LastCalculatedAt() time.Time { return s.lastCalculatedAt }

// Metrics is the pure computation result before persistence.
type Metrics struct {
	PlasticBottlesSaved int64
	CO2Reduced          decimal.Decimal // 2 decimal places, kg
	WaterSaved          decimal.Decimal // 2 decimal places, litres
}

// Calculate derives the three metrics from the full usage history.
// Deterministic for a fixed entry set, so recomputation is idempotent.
func Calculate(entries []*usage.Entry) Metrics {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Litres().Decimal())
	}

	bottles := total.Mul(bottlesPerLitreDec).Round(0).IntPart()
	co2 := decimal.NewFromInt(bottles).Mul(co2PerBottleDec).Round(2)
	water := total.Mul(waterMultiplierDec).Round(2)

	return Metrics{
		PlasticBottlesSaved: bottles,
		CO2Reduced:          co2,
		WaterSaved:          water,
	}
}
