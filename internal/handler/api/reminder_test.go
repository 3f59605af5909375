//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"aquaflow/internal/domain/reminder"
	"aquaflow/internal/domain/user"
	"aquaflow/internal/handler/api"
	resdto "aquaflow/internal/handler/dto/response"
	"aquaflow/internal/pkg/clock"
	"aquaflow/internal/usecase/commands"
	"aquaflow/internal/usecase/queries"
	"aquaflow/tests/common/builder"
	"aquaflow/tests/common/httptest"
	commandsmock "aquaflow/tests/mock/commands"
	queriesmock "aquaflow/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReminderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReminderCommands
	mockQueries  *queriesmock.MockReminderQueries
	handler      *api.ReminderHandler
	userID       uuid.UUID
}

func (s *ReminderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReminderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReminderQueries(s.mockCtrl)
	s.handler = api.NewReminderHandler(s.mockCommands, s.mockQueries, clock.NewRealClock())
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

	s.router.GET("/reminders", authMiddleware, s.handler.List)
	s.router.PATCH("/reminders/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/admin/reminders/pending", authMiddleware, s.handler.ListPending)
}

func (s *ReminderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}

func (s *ReminderHandlerTestSuite) TestList() {
	s.Run("success: returns the user's reminders", func() {
		view := builder.NewReminderBuilder().With(func(b *builder.ReminderBuilder) {
			b.UserID = s.userID
		}).BuildView()

		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.ReminderView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reminders", nil, "bearer-token")

		var body []resdto.ReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(view.ID.String(), body[0].ID)
		s.Equal("Monthly Service Reminder", body[0].Title)
		s.Equal("pending", body[0].Status)
	})
}

func (s *ReminderHandlerTestSuite) TestUpdateStatus() {
	rb := builder.NewReminderBuilder().With(func(b *builder.ReminderBuilder) {
		b.UserID = s.userID
		b.Status = reminder.StatusSent
	})
	url := "/reminders/" + rb.ID.String() + "/status"
	reqBody := map[string]string{"status": "sent"}

	s.Run("success: returns 200 with the advanced reminder", func() {
		s.mockCommands.EXPECT().
			MarkStatus(gomock.Any(), rb.ID, s.userID, user.RoleCustomer, "sent").
			Return(rb.BuildDomain(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")

		var body resdto.ReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sent", body.Status)
	})

	s.Run("error: 400 Bad Request on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reminders/not-a-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]string{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown status",
				commandsError:  reminder.ErrInvalidStatus,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown reminder status",
			},
			{
				name:           "backward transition",
				commandsError:  reminder.ErrTransitionNotAllowed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "transition not allowed",
			},
			{
				name:           "not the owner",
				commandsError:  commands.ErrReminderNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "another user",
			},
			{
				name:           "not found",
				commandsError:  commands.ErrReminderNotFoundWrite,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					MarkStatus(gomock.Any(), rb.ID, s.userID, user.RoleCustomer, "sent").
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *ReminderHandlerTestSuite) TestListPending() {
	s.Run("success: returns due reminders with contact details", func() {
		view := builder.NewReminderBuilder().BuildView()
		pending := &queries.PendingReminderView{
			ReminderView: *view,
			UserEmail:    "customer@example.com",
			UserUsername: "customer",
			UserPhone:    "+962790000000",
		}

		s.mockQueries.EXPECT().ListPendingDue(gomock.Any(), gomock.Any()).
			Return([]*queries.PendingReminderView{pending}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reminders/pending", nil, "bearer-token")

		var body []resdto.PendingReminderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("customer@example.com", body[0].UserEmail)
	})
}
