//go:build unit || e2e

package builder

import (
	"time"

	reqdto "aquaflow/internal/handler/dto/request"
	"aquaflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type UsageBuilder struct {
	UserID     uuid.UUID
	LitresUsed string
	Date       time.Time
	CreatedAt  time.Time
}

func NewUsageBuilder() *UsageBuilder {
	now := time.Now()
	return &UsageBuilder{
		UserID:     uuid.New(),
		LitresUsed: "12.50",
		Date:       now,
		CreatedAt:  now,
	}
}

func (b *UsageBuilder) With(mutate func(*UsageBuilder)) *UsageBuilder {
	mutate(b)
	return b
}

func (b *UsageBuilder) BuildRecordRequestDTO() reqdto.RecordUsageRequest {
	return reqdto.RecordUsageRequest{
		LitresUsed: b.LitresUsed,
		Date:       &b.Date,
	}
}

func (b *UsageBuilder) BuildEntryView() *queries.UsageEntryView {
	return &queries.UsageEntryView{
		ID:         uuid.New(),
		UserID:     b.UserID,
		Date:       b.Date,
		LitresUsed: b.LitresUsed,
		CreatedAt:  b.CreatedAt,
	}
}
