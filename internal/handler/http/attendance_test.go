package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/newrest-ops/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService returns canned decisions and records the identities and
// coordinates it was called with.
type fakeService struct {
	decision attendance.Decision

	lastIdentity string
	lastLat      float64
	lastLon      float64
}

func (f *fakeService) RequestCheckIn(_ context.Context, identity string) attendance.Decision {
	f.lastIdentity = identity
	return f.decision
}

func (f *fakeService) RequestCheckOut(_ context.Context, identity string) attendance.Decision {
	f.lastIdentity = identity
	return f.decision
}

func (f *fakeService) ConfirmLocation(_ context.Context, identity string, lat, lon float64) attendance.Decision {
	f.lastIdentity = identity
	f.lastLat = lat
	f.lastLon = lon
	return f.decision
}

func (f *fakeService) Status(_ context.Context, identity string) attendance.Decision {
	f.lastIdentity = identity
	return f.decision
}

func newTestServer(t *testing.T, svc attendance.Service) (*httptest.Server, string) {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	_, tokenString, err := tokenAuth.Encode(map[string]interface{}{"worker_id": "42"})
	require.NoError(t, err)

	router := NewRouter(tokenAuth, NewAttendanceHandler(svc), "test")
	return httptest.NewServer(router), tokenString
}

func doRequest(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestCheckIn_LocationRequested(t *testing.T) {
	svc := &fakeService{decision: attendance.Decision{
		Outcome:      attendance.OutcomeLocationRequested,
		WorkerName:   "Maria P",
		RadiusMeters: 500,
	}}
	srv, token := newTestServer(t, svc)
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/check-in", token, "")

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "42", svc.lastIdentity)

	payload := decodeBody(t, resp)
	assert.Equal(t, true, payload["success"])
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, string(attendance.OutcomeLocationRequested), data["outcome"])
}

func TestCheckIn_RequiresToken(t *testing.T) {
	srv, _ := newTestServer(t, &fakeService{})
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/check-in", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLocation_ForwardsCoordinates(t *testing.T) {
	svc := &fakeService{decision: attendance.Decision{
		Outcome:     attendance.OutcomeCheckedIn,
		WorkerName:  "Maria P",
		CheckInTime: "09:00",
	}}
	srv, token := newTestServer(t, svc)
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/location", token,
		`{"latitude": 37.9094, "longitude": 23.8711}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 37.9094, svc.lastLat)
	assert.Equal(t, 23.8711, svc.lastLon)

	payload := decodeBody(t, resp)
	assert.Contains(t, payload["message"], "09:00")
}

func TestLocation_RejectsMalformedBody(t *testing.T) {
	srv, token := newTestServer(t, &fakeService{})
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/location", token, `{"latitude": "oops"`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckOut_OutsideZoneIsConflict(t *testing.T) {
	svc := &fakeService{decision: attendance.Decision{
		Outcome:        attendance.OutcomeOutsideZone,
		WorkerName:     "Maria P",
		DistanceMeters: 1000,
		RadiusMeters:   500,
	}}
	srv, token := newTestServer(t, svc)
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/location", token,
		`{"latitude": 37.9184, "longitude": 23.8711}`)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	payload := decodeBody(t, resp)
	errDetail := payload["error"].(map[string]interface{})
	assert.Contains(t, errDetail["message"], "1000m")
}

func TestStatus_ReportsRecord(t *testing.T) {
	svc := &fakeService{decision: attendance.Decision{
		Outcome:      attendance.OutcomeStatus,
		WorkerName:   "Maria P",
		Status:       attendance.StatusComplete,
		CheckInTime:  "08:00",
		CheckOutTime: "16:30",
		WorkedToday:  "8h 30m",
	}}
	srv, token := newTestServer(t, svc)
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodGet, "/api/v1/attendance/status", token, "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "8h 30m", data["worked_today"])
}

func TestStoreFailureIsBadGateway(t *testing.T) {
	svc := &fakeService{decision: attendance.Decision{Outcome: attendance.OutcomeStoreFailed}}
	srv, token := newTestServer(t, svc)
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodPost, "/api/v1/attendance/check-in", token, "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, &fakeService{})
	defer srv.Close()

	resp := doRequest(t, srv, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "healthy", data["status"])
}
