//go:build e2e

package usage_test

import (
	"encoding/json"
	"fmt"
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
	registerURL  = "/api/auth/register"
	usageURL     = "/api/water-usage"
	ecoImpactURL = "/api/eco-impact"
)

type usageSuite struct {
	e2e.SharedSuite
}

func TestUsageSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(usageSuite))
}

// registerUser creates an account through the public API and returns
// its access token.
func (s *usageSuite) registerUser(email string) string {
	t := s.T()

	reqBody := request.RegisterRequest{
		Email:    email,
		Password: "SecurePass123",
		Username: "wateruser",
		Phone:    "+962790000000",
	}
	w := helper.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var auth response.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.AccessToken)
	return auth.AccessToken
}

func (s *usageSuite) TestRecordAndImpact() {
	s.Run("recording usage refreshes the eco impact snapshot", func() {
		t := s.T()
		token := s.registerUser("impact@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, usageURL,
			request.RecordUsageRequest{LitresUsed: "10"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = helper.PerformRequest(t, s.Router, http.MethodPost, usageURL,
			request.RecordUsageRequest{LitresUsed: "5"}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var recorded response.RecordUsageResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recorded))
		require.NotNil(t, recorded.EcoImpact)
		require.Equal(t, int64(30), recorded.EcoImpact.PlasticBottlesSaved)
		require.Equal(t, "2.46", recorded.EcoImpact.CO2Reduced)
		require.Equal(t, "45.00", recorded.EcoImpact.WaterSaved)

		// The read endpoint serves the same snapshot.
		w = helper.PerformRequest(t, s.Router, http.MethodGet, ecoImpactURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var impact response.EcoImpactResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &impact))
		require.Equal(t, int64(30), impact.PlasticBottlesSaved)
		require.Equal(t, "2.46", impact.CO2Reduced)
	})

	s.Run("rejects non numeric litres", func() {
		t := s.T()
		token := s.registerUser("badinput@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, usageURL,
			request.RecordUsageRequest{LitresUsed: "ten"}, token)
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodGet, usageURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "[]", w.Body.String(), "rejected input must not be stored")
	})

	s.Run("lists entries newest first", func() {
		t := s.T()
		token := s.registerUser("history@example.com")

		for _, litres := range []string{"1.5", "2.5", "3.5"} {
			w := helper.PerformRequest(t, s.Router, http.MethodPost, usageURL,
				request.RecordUsageRequest{LitresUsed: litres}, token)
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := helper.PerformRequest(t, s.Router, http.MethodGet, usageURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var entries []*response.UsageEntryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
		require.Len(t, entries, 3)
	})

	s.Run("requires authentication", func() {
		t := s.T()
		for _, endpoint := range []struct {
			method string
			path   string
		}{
			{http.MethodPost, usageURL},
			{http.MethodGet, usageURL},
			{http.MethodGet, ecoImpactURL},
		} {
			w := helper.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code,
				fmt.Sprintf("%s %s must require a token", endpoint.method, endpoint.path))
		}
	})
}

func (s *usageSuite) TestUsersAreIsolated() {
	s.Run("one user's ledger never leaks into another's", func() {
		t := s.T()
		alice := s.registerUser("alice@example.com")
		bob := s.registerUser("bob@example.com")

		w := helper.PerformRequest(t, s.Router, http.MethodPost, usageURL,
			request.RecordUsageRequest{LitresUsed: "20"}, alice)
		require.Equal(t, http.StatusCreated, w.Code)

		w = helper.PerformRequest(t, s.Router, http.MethodGet, usageURL, nil, bob)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "[]", w.Body.String())
	})
}
