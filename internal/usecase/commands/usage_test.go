//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"aquaflow/internal/domain/usage"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsageUseCase(uow *fakeUoW, clk clock.Clock) commands.UsageCommands {
	return commands.NewUsageUseCase(uow, commands.NewEcoImpactUseCase(uow, clk), clk)
}

func TestRecordUsage_RefreshesSnapshot(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	uc := newUsageUseCase(uow, clk)
	userID := uuid.New()

	first, err := uc.RecordUsage(ctx, userID, commands.RecordUsageRequest{Litres: "10"})
	require.NoError(t, err)
	require.NotNil(t, first.Snapshot)
	assert.Equal(t, int64(20), first.Snapshot.PlasticBottlesSaved())

	second, err := uc.RecordUsage(ctx, userID, commands.RecordUsageRequest{Litres: "5"})
	require.NoError(t, err)
	require.NotNil(t, second.Snapshot)

	// 15 litres total: 30 bottles, 30*0.082 kg CO2, 15*3 litres saved.
	assert.Equal(t, int64(30), second.Snapshot.PlasticBottlesSaved())
	assert.Equal(t, "2.46", second.Snapshot.CO2Reduced().StringFixed(2))
	assert.Equal(t, "45.00", second.Snapshot.WaterSaved().StringFixed(2))

	assert.Len(t, uow.usageEntries, 2)
	// The snapshot row is reused across recomputations.
	assert.Equal(t, first.Snapshot.ID(), second.Snapshot.ID())
}

func TestRecordUsage_RejectsInvalidLitres(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Now())
	uc := newUsageUseCase(uow, clk)
	userID := uuid.New()

	testCases := []struct {
		name        string
		litres      string
		expectedErr error
	}{
		{name: "not a number", litres: "ten", expectedErr: usage.ErrUnparsableLitres},
		{name: "empty", litres: "", expectedErr: usage.ErrUnparsableLitres},
		{name: "zero", litres: "0", expectedErr: usage.ErrNonPositiveLitres},
		{name: "negative", litres: "-2.5", expectedErr: usage.ErrNonPositiveLitres},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordUsage(ctx, userID, commands.RecordUsageRequest{Litres: tc.litres})
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}

	assert.Empty(t, uow.usageEntries, "rejected input must not create entries")
}

func TestRecordUsage_SnapshotFailureKeepsEntry(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	uow.impactUpsertErr = errs.New("snapshot store down")
	clk := clock.NewMockClock(time.Now())
	uc := newUsageUseCase(uow, clk)
	userID := uuid.New()

	result, err := uc.RecordUsage(ctx, userID, commands.RecordUsageRequest{Litres: "3"})

	require.NoError(t, err, "the entry is durable; a stale snapshot is not a request failure")
	assert.NotEqual(t, uuid.Nil, result.EntryID)
	assert.Nil(t, result.Snapshot)
	assert.Len(t, uow.usageEntries, 1)
}

func TestRecordUsage_UsesProvidedDate(t *testing.T) {
	ctx := context.Background()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC))
	uc := newUsageUseCase(uow, clk)
	userID := uuid.New()

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.RecordUsage(ctx, userID, commands.RecordUsageRequest{Litres: "1.5", Date: &date})
	require.NoError(t, err)

	require.Len(t, uow.usageEntries, 1)
	assert.True(t, uow.usageEntries[0].Date().Equal(date))
}
