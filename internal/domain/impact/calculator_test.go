//go:build unit

package impact_test

import (
	"testing"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/domain/usage"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var metricsCmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
}

func entriesFor(t *testing.T, userID uuid.UUID, litres ...string) []*usage.Entry {
	t.Helper()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := make([]*usage.Entry, 0, len(litres))
	for i, l := range litres {
		v, err := usage.ParseLitres(l)
		require.NoError(t, err)
		d := now.AddDate(0, 0, i)
		entries = append(entries, usage.NewEntry(userID, &d, v, now))
	}
	return entries
}

func TestCalculate(t *testing.T) {
	userID := uuid.New()

	t.Run("10 litres on day 1 and 5 litres on day 2", func(t *testing.T) {
		m := impact.Calculate(entriesFor(t, userID, "10", "5"))

		assert.Equal(t, int64(30), m.PlasticBottlesSaved)
		assert.Equal(t, "2.46", m.CO2Reduced.StringFixed(2))
		assert.Equal(t, "45.00", m.WaterSaved.StringFixed(2))
	})

	t.Run("no entries yields all-zero metrics", func(t *testing.T) {
		m := impact.Calculate(nil)

		assert.Equal(t, int64(0), m.PlasticBottlesSaved)
		assert.True(t, m.CO2Reduced.IsZero())
		assert.True(t, m.WaterSaved.IsZero())
	})

	t.Run("fractional litres round bottles to nearest integer", func(t *testing.T) {
		// 1.3 litres -> 2.6 bottles -> 3
		m := impact.Calculate(entriesFor(t, userID, "1.3"))

		assert.Equal(t, int64(3), m.PlasticBottlesSaved)
		assert.Equal(t, "0.25", m.CO2Reduced.StringFixed(2)) // 3 * 0.082 = 0.246
		assert.Equal(t, "3.90", m.WaterSaved.StringFixed(2))
	})

	t.Run("duplicate dates are simply summed", func(t *testing.T) {
		m := impact.Calculate(entriesFor(t, userID, "2", "2", "2"))

		assert.Equal(t, int64(12), m.PlasticBottlesSaved)
		assert.Equal(t, "18.00", m.WaterSaved.StringFixed(2))
	})

	t.Run("deterministic for a fixed entry set", func(t *testing.T) {
		entries := entriesFor(t, userID, "7.25", "0.5", "12")

		first := impact.Calculate(entries)
		second := impact.Calculate(entries)

		if diff := cmp.Diff(first, second, metricsCmpOpts...); diff != "" {
			t.Errorf("Metrics mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseLitres(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "integer OK", input: "10"},
		{name: "decimal OK", input: "2.75"},
		{name: "zero rejected", input: "0", errIs: usage.ErrNonPositiveLitres},
		{name: "negative rejected", input: "-3", errIs: usage.ErrNonPositiveLitres},
		{name: "non-numeric rejected", input: "ten", errIs: usage.ErrUnparsableLitres},
		{name: "empty rejected", input: "", errIs: usage.ErrUnparsableLitres},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := usage.ParseLitres(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			expected, _ := decimal.NewFromString(tc.input)
			assert.True(t, l.Decimal().Equal(expected))
		})
	}
}
