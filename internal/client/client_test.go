package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingDrivers(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/drivers/pending", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"drivers": []map[string]interface{}{
				{"driverId": "1", "fullName": "Jane Doe", "status": "pending"},
				{"driverId": "2", "fullName": "John Doe", "status": "pending"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token", 5*time.Second)
	drivers, err := c.PendingDrivers(context.Background())
	require.NoError(t, err)
	require.Len(t, drivers, 2)
	assert.Equal(t, "Jane Doe", drivers[0].FullName)
}

func TestApproveDriverSendsPassword(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/drivers/approve/2", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token", 5*time.Second)
	err := c.ApproveDriver(context.Background(), "2", "PnG4K7QW2XZ")
	require.NoError(t, err)

	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "PnG4K7QW2XZ", body["newPassword"])
}

func TestBusinessRejectionSurfacesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(409)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "Already reviewed",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-token", 5*time.Second)
	err := c.RejectDriver(context.Background(), "2")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Already reviewed", apiErr.Message)
}

func TestRejectionWithoutMessageGetsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	err := c.RejectVehicle(context.Background(), 7, "blurry photos")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed", apiErr.Message)
}

func TestApproveVehicleOmitsUnsetRates(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/vehicles/approve/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	}))
	defer srv.Close()

	weekly := 280.0
	c := New(srv.URL, "test-token", 5*time.Second)
	err := c.ApproveVehicle(context.Background(), 7, Pricing{DailyRate: 45.5, WeeklyRate: &weekly})
	require.NoError(t, err)

	assert.Equal(t, 45.5, body["dailyRate"])
	assert.Equal(t, 280.0, body["weeklyRate"])
	_, present := body["monthlyRate"]
	assert.False(t, present)
}

func TestTransportFailureIsWrapped(t *testing.T) {
	c := New("http://127.0.0.1:1", "", 100*time.Millisecond)
	_, err := c.PendingVehicles(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Contains(t, err.Error(), "fetch pending vehicles")
}

func TestLoginReturnsBoundClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"token":   "session-token",
				"user":    map[string]interface{}{"id": 1, "userType": "business_owner"},
			})
		case "/stats/approvals":
			assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success":     true,
				"pending":     map[string]int64{"drivers": 1, "vehicles": 2, "total": 3},
				"myApprovals": map[string]int64{"total": 4},
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second)
	session, err := c.Login(context.Background(), "owner@pickngo.com", "secret")
	require.NoError(t, err)

	stats, err := session.ApprovalStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Pending.Total)
	assert.Equal(t, int64(4), stats.MyApprovals.Total)
}
