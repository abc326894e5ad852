package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/extracurricular/internal/catalog"
	"example.com/extracurricular/internal/store"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	service := catalog.NewService(store.NewMemoryStore(), nil, nil)
	handler := NewHandler(service, t.TempDir())

	router := chi.NewRouter()
	handler.Routes(router)
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), "body: %s", rr.Body.String())
}

func TestRootRedirectsToStatic(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/")
	require.Equal(t, http.StatusTemporaryRedirect, rr.Code)
	assert.Equal(t, "/static/index.html", rr.Header().Get("Location"))
}

func TestListActivities(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var activities map[string]ActivityView
	decodeBody(t, rr, &activities)

	expected := []string{
		"Basketball", "Tennis", "Drama Club", "Art Studio", "Debate Team",
		"Science Club", "Chess Club", "Programming Class", "Gym Class",
	}
	for _, name := range expected {
		activity, ok := activities[name]
		require.True(t, ok, "missing activity %s", name)
		assert.NotEmpty(t, activity.Description, "%s description", name)
		assert.NotEmpty(t, activity.Schedule, "%s schedule", name)
		assert.Positive(t, activity.MaxParticipants, "%s max_participants", name)
		assert.NotNil(t, activity.Participants, "%s participants", name)
	}
}

func TestSignUp(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Basketball/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp.Message, "Signed up test@mergington.edu for Basketball")
}

func TestSignUpAddsParticipant(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Tennis/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, rr, &activities)
	assert.Contains(t, activities["Tennis"].Participants, "newstudent@mergington.edu")
}

func TestSignUpUnknownActivity(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Swimming/signup?email=test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Activity not found", resp["detail"])
}

func TestSignUpDuplicate(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Basketball/signup?email=duplicate@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodPost,
		"/activities/Basketball/signup?email=duplicate@mergington.edu")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp["detail"], "already signed up")
}

func TestSignUpMissingEmail(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/activities/Basketball/signup")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "email is required", resp["detail"])
}

func TestSignUpEncodedActivityName(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Drama%20Club/signup?email=actor@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp.Message, "Signed up actor@mergington.edu for Drama Club")
}

func TestRemoveParticipant(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Basketball/signup?email=removeme@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodDelete,
		"/activities/Basketball/participants/removeme@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp.Message, "Removed removeme@mergington.edu from Basketball")

	// remove-then-remove-again yields success then not found
	rr = doRequest(t, router, http.MethodDelete,
		"/activities/Basketball/participants/removeme@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var errResp map[string]string
	decodeBody(t, rr, &errResp)
	assert.Contains(t, errResp["detail"], "not found")
}

func TestRemoveAbsentParticipant(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodDelete,
		"/activities/Basketball/participants/nothere@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp["detail"], "not found")
}

func TestRemoveFromUnknownActivity(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodDelete,
		"/activities/Swimming/participants/test@mergington.edu")
	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Activity not found", resp["detail"])
}

func TestRemoveEncodedEmail(t *testing.T) {
	router := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Drama%20Club/signup?email=special%2Bemail@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, router, http.MethodDelete,
		"/activities/Drama%20Club/participants/special%2Bemail@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp MessageResponse
	decodeBody(t, rr, &resp)
	assert.Contains(t, resp.Message, "Removed special+email@mergington.edu from Drama Club")
}

func TestFullSignupAndRemovalWorkflow(t *testing.T) {
	router := newTestRouter(t)

	countParticipants := func() int {
		rr := doRequest(t, router, http.MethodGet, "/activities")
		require.Equal(t, http.StatusOK, rr.Code)
		var activities map[string]ActivityView
		decodeBody(t, rr, &activities)
		return len(activities["Science Club"].Participants)
	}

	initial := countParticipants()

	rr := doRequest(t, router, http.MethodPost,
		"/activities/Science%20Club/signup?email=workflow@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, initial+1, countParticipants())

	rr = doRequest(t, router, http.MethodDelete,
		"/activities/Science%20Club/participants/workflow@mergington.edu")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, initial, countParticipants())
}

func TestMultipleSignupsAcrossActivities(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/activities/Basketball/signup?email=multisport@mergington.edu",
		"/activities/Tennis/signup?email=multisport@mergington.edu",
		"/activities/Chess%20Club/signup?email=multisport@mergington.edu",
	} {
		rr := doRequest(t, router, http.MethodPost, target)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	rr := doRequest(t, router, http.MethodGet, "/activities")
	var activities map[string]ActivityView
	decodeBody(t, rr, &activities)
	assert.Contains(t, activities["Basketball"].Participants, "multisport@mergington.edu")
	assert.Contains(t, activities["Tennis"].Participants, "multisport@mergington.edu")
	assert.Contains(t, activities["Chess Club"].Participants, "multisport@mergington.edu")
}
