//go:build e2e

package reminder_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"aquaflow/internal/handler/dto/request"
	"aquaflow/internal/handler/dto/response"
	helper "aquaflow/tests/common/httptest"
	"aquaflow/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL      = "/api/auth/register"
	subscriptionsURL = "/api/subscriptions"
	remindersURL     = "/api/reminders"
)

type reminderSuite struct {
	e2e.SharedSuite
}

func TestReminderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reminderSuite))
}

func (s *reminderSuite) registerUser(email string) string {
	t := s.T()

	reqBody := request.RegisterRequest{
		Email:    email,
		Password: "SecurePass123",
		Username: "subscriber",
		Phone:    "+962790000000",
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var auth response.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	return auth.AccessToken
}

func (s *reminderSuite) listReminders(token string) []*response.ReminderResponse {
	t := s.T()

	w := helper.PerformRequest(t, s.Router, http.MethodGet, remindersURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reminders []*response.ReminderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reminders))
	return reminders
}

func (s *reminderSuite) TestSubscriptionSchedulesReminders() {
	s.Run("a new subscription schedules maintenance and payment reminders", func() {
		t := s.T()
		token := s.registerUser("newsub@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, subscriptionsURL,
			request.CreateSubscriptionRequest{}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		reminders := s.listReminders(token)
		require.Len(t, reminders, 2)

		titles := map[string]bool{}
		for _, rem := range reminders {
			require.Equal(t, "pending", rem.Status)
			titles[rem.Title] = true
		}
		require.True(t, titles["Monthly Service Reminder"])
		require.True(t, titles["Monthly Subscription Payment"])
	})

	s.Run("a second subscription is rejected", func() {
		t := s.T()
		token := s.registerUser("doublesub@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, subscriptionsURL,
			request.CreateSubscriptionRequest{}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodPost, subscriptionsURL,
			request.CreateSubscriptionRequest{}, token)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Len(t, s.listReminders(token), 2, "the rejected attempt must not schedule reminders")
	})
}

func (s *reminderSuite) TestStatusTransitions() {
	s.Run("reminders advance forward only", func() {
		t := s.T()
		token := s.registerUser("fsm@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, subscriptionsURL,
			request.CreateSubscriptionRequest{}, token)
		require.Equal(t, http.StatusCreated, w.Code)

		reminders := s.listReminders(token)
		require.NotEmpty(t, reminders)
		statusURL := remindersURL + "/" + reminders[0].ID + "/status"

		w = helper.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.UpdateReminderStatusRequest{Status: "sent"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReminderResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
		require.Equal(t, "sent", updated.Status)

		// Backward move is refused and the stored status is untouched.
		w = helper.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.UpdateReminderStatusRequest{Status: "pending"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.UpdateReminderStatusRequest{Status: "read"}, token)
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("users cannot touch each other's reminders", func() {
		t := s.T()
		owner := s.registerUser("owner@example.com")
		intruder := s.registerUser("intruder@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, subscriptionsURL,
			request.CreateSubscriptionRequest{}, owner)
		require.Equal(t, http.StatusCreated, w.Code)

		reminders := s.listReminders(owner)
		require.NotEmpty(t, reminders)
		statusURL := remindersURL + "/" + reminders[0].ID + "/status"

		w = helper.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
			request.UpdateReminderStatusRequest{Status: "sent"}, intruder)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}
