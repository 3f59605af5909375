//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"aquaflow/internal/domain/impact"
	"aquaflow/internal/domain/usage"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/handler/api"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/pkg/errs"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"
	"aquaflow/tests/common/builder"
	"aquaflow/tests/common/httptest"
	"aquaflow/tests/common/testutil"
	commandsmock "aquaflow/tests/mock/commands"
	queriesmock "aquaflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UsageHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUsageCommands
	mockQueries  *queriesmock.MockUsageQueries
	handler      *api.UsageHandler
	userID       uuid.UUID
}

func (s *UsageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUsageCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUsageQueries(s.mockCtrl)
	s.handler = api.NewUsageHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.GET("/water-usage", authMiddleware, s.handler.List)
	s.router.POST("/water-usage", authMiddleware, s.handler.Record)
}

func (s *UsageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUsageHandlerSuite(t *testing.T) {
	suite.Run(t, new(UsageHandlerTestSuite))
}

func (s *UsageHandlerTestSuite) TestRecord() {
	url := "/water-usage"
	reqBody := builder.NewUsageBuilder().BuildRecordRequestDTO()

	snapshot := impact.ReconstructSnapshot(
		uuid.New(), s.userID, 25,
		decimal.RequireFromString("2.05"), decimal.RequireFromString("37.50"),
		time.Now(),
	)
	expectedResult := &commands.RecordUsageResult{EntryID: uuid.New(), Snapshot: snapshot}

	s.Run("success: returns 201 with refreshed snapshot", func() {
		s.mockCommands.EXPECT().RecordUsage(gomock.Any(), s.userID, gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.RecordUsageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.EntryID.String(), body.EntryID)
		s.Require().NotNil(body.EcoImpact)
		s.Equal(int64(25), body.EcoImpact.PlasticBottlesSaved)
		s.Equal("2.05", body.EcoImpact.CO2Reduced)
		s.Equal("37.50", body.EcoImpact.WaterSaved)
	})

	s.Run("error: 400 Bad Request when litres is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("litres_used", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps domain errors to 400", func() {
		testCases := []struct {
			name        string
			litres      string
			commandsErr error
			expectedMsg string
		}{
			{name: "non numeric litres", litres: "ten", commandsErr: usage.ErrUnparsableLitres, expectedMsg: "not a number"},
			{name: "zero litres", litres: "0", commandsErr: usage.ErrNonPositiveLitres, expectedMsg: "positive"},
			{name: "negative litres", litres: "-3", commandsErr: usage.ErrNonPositiveLitres, expectedMsg: "positive"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RecordUsage(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsErr).Times(1)

				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("litres_used", tc.litres))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 500 Internal Server Error when persistence fails", func() {
		s.mockCommands.EXPECT().RecordUsage(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, errs.New("failed to create usage entry: connection refused")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Record usage failed")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *UsageHandlerTestSuite) TestList() {
	url := "/water-usage"

	s.Run("success: returns the user's entries", func() {
		entry := builder.NewUsageBuilder().With(func(b *builder.UsageBuilder) {
			b.UserID = s.userID
			b.LitresUsed = "8.00"
		}).BuildEntryView()

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any()).
			Return([]*queries.UsageEntryView{entry}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.UsageEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(entry.ID.String(), body[0].ID)
		s.Equal("8.00", body[0].LitresUsed)
	})

	s.Run("success: passes parsed date filters through", func() {
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.userID, gomock.Cond(func(f queries.UsageFilters) bool {
				return f.From != nil && f.From.Equal(from) && f.To != nil && f.To.Equal(to)
			})).
			Return(nil, nil).Times(1)

		query := "?startDate=" + from.Format(time.RFC3339) + "&endDate=" + to.Format(time.RFC3339)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+query, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?startDate=june", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date filter")
	})

	s.Run("error: 400 Bad Request when range is inverted", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, queries.ErrInvalidUsageRange).Times(1)

		query := "?startDate=2025-06-30T00:00:00Z&endDate=2025-06-01T00:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+query, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start is after end")
	})
}
