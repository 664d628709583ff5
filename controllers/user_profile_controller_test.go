package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ddate_server/models"
	"ddate_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the controllers onto a fresh in-memory store with a
// deterministic id generator.
func newTestRouter() *mux.Router {
	store := services.NewProfileStore(nil)
	seq := 0
	accounts := &services.AccountService{
		Store: store,
		GenerateID: func() (string, error) {
			seq++
			return fmt.Sprintf("user-%d", seq), nil
		},
		Now: time.Now,
	}
	swipes := &services.SwipeService{Store: store}
	matches := &services.MatchService{Store: store}

	r := mux.NewRouter()

	profiles := NewUserProfileController(accounts)
	r.HandleFunc("/api/profiles", profiles.CreateAccount).Methods("POST")
	r.HandleFunc("/api/profiles", profiles.ListAccounts).Methods("GET")
	r.HandleFunc("/api/profiles/{userId}", profiles.GetAccount).Methods("GET")
	r.HandleFunc("/api/profiles/{userId}", profiles.UpdateAccount).Methods("PATCH")
	r.HandleFunc("/api/profiles/{userId}", profiles.DeleteAccount).Methods("DELETE")
	r.HandleFunc("/api/profiles/{userId}/deactivate", profiles.DeactivateAccount).Methods("POST")

	swipeController := NewSwipeController(swipes)
	r.HandleFunc("/api/swipes", swipeController.RecordSwipe).Methods("POST")
	r.HandleFunc("/api/swipes/{userId}/matches", swipeController.RemoveMatches).Methods("DELETE")

	matchController := NewMatchController(matches)
	r.HandleFunc("/api/matches/{profileId}", matchController.FindMatches).Methods("GET")

	return r
}

func doJSON(t *testing.T, router *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Principal", "test-principal")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createProfilePayload(gender, preferredGender string) map[string]interface{} {
	return map[string]interface{}{
		"name":              "Test User",
		"email":             "test@example.com",
		"age":               28,
		"minPreferredAge":   21,
		"maxPreferredAge":   40,
		"location":          "Berlin",
		"preferredLocation": "Berlin",
		"gender":            gender,
		"preferredGender":   preferredGender,
	}
}

func createTestAccount(t *testing.T, router *mux.Router, gender, preferredGender string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/profiles", createProfilePayload(gender, preferredGender))
	require.Equal(t, http.StatusOK, w.Code, "create failed: %s", w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	userID, _ := resp["userId"].(string)
	require.NotEmpty(t, userID)
	return userID
}

func TestCreateAccountEndpoint(t *testing.T) {
	router := newTestRouter()

	userID := createTestAccount(t, router, "female", "male")

	w := doJSON(t, router, http.MethodGet, "/api/profiles/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "test-principal", profile.CreatedBy)
	assert.Equal(t, models.StatusActive, profile.Status)
}

func TestCreateAccountMissingFieldEndpoint(t *testing.T) {
	router := newTestRouter()

	payload := createProfilePayload("female", "male")
	delete(payload, "email")

	w := doJSON(t, router, http.MethodPost, "/api/profiles", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestGetUnknownAccountEndpoint(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/profiles/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateAccountEndpoint(t *testing.T) {
	router := newTestRouter()
	userID := createTestAccount(t, router, "female", "male")

	w := doJSON(t, router, http.MethodPatch, "/api/profiles/"+userID, map[string]interface{}{
		"occupation": "engineer",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "engineer")
}

func TestDeactivateThenGetEndpoint(t *testing.T) {
	router := newTestRouter()
	userID := createTestAccount(t, router, "female", "male")

	w := doJSON(t, router, http.MethodPost, "/api/profiles/"+userID+"/deactivate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/profiles/"+userID, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteThenGetEndpoint(t *testing.T) {
	router := newTestRouter()
	userID := createTestAccount(t, router, "female", "male")

	w := doJSON(t, router, http.MethodDelete, "/api/profiles/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/profiles/"+userID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAccountsEndpoint(t *testing.T) {
	router := newTestRouter()
	for i := 0; i < 4; i++ {
		createTestAccount(t, router, "female", "male")
	}

	w := doJSON(t, router, http.MethodGet, "/api/profiles?page=2&size=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.PaginatedProfiles
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 4, result.TotalProfiles)
	assert.Len(t, result.Profiles, 1)

	w = doJSON(t, router, http.MethodGet, "/api/profiles?page=9&size=3", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwipeAndMatchFlowEndpoint(t *testing.T) {
	router := newTestRouter()
	idA := createTestAccount(t, router, "female", "male")
	idB := createTestAccount(t, router, "male", "female")

	w := doJSON(t, router, http.MethodPost, "/api/swipes", map[string]string{
		"actorId": idA, "targetId": idB, "direction": "right",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/swipes", map[string]string{
		"actorId": idB, "targetId": idA, "direction": "right",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/matches/"+idA+"?page=1&size=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result models.MatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 1, result.TotalMatches)
	assert.Equal(t, idB, result.PaginatedProfiles[0].UserID)

	// Unmatch tears the relationship down for both sides.
	w = doJSON(t, router, http.MethodDelete, "/api/swipes/"+idA+"/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/matches/"+idB+"?page=1&size=10", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSwipeSelfEndpoint(t *testing.T) {
	router := newTestRouter()
	idA := createTestAccount(t, router, "female", "male")

	w := doJSON(t, router, http.MethodPost, "/api/swipes", map[string]string{
		"actorId": idA, "targetId": idA, "direction": "right",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
