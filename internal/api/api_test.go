package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/store/memstore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(memstore.New()))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodePins(t *testing.T, resp *http.Response) []model.Pin {
	t.Helper()
	defer resp.Body.Close()
	var pins []model.Pin
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pins))
	return pins
}

func TestUserLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice", Username: "Alice"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Duplicate user id conflicts
	resp = doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Missing identity is rejected
	resp = doJSON(t, "POST", srv.URL+"/api/users", model.User{Username: "nobody"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "GET", srv.URL+"/api/users/alice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var u model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&u))
	resp.Body.Close()
	assert.Equal(t, "Alice", u.Username)

	resp = doJSON(t, "GET", srv.URL+"/api/users/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

// End-to-end: create user, pin, collection; save into the collection;
// unsave; the pin leaves both the collection and the saved set.
func TestSaveUnsaveScenario(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", srv.URL+"/api/pins", model.Pin{PostID: "p1", UserID: "alice", Caption: "view"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", srv.URL+"/api/users/alice/saved_pins/p1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", srv.URL+"/api/collections", model.Collection{CollectionID: "c1", UserID: "alice", CollectionName: "spots"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", srv.URL+"/api/users/alice/saved_pins/p1",
		map[string]interface{}{"collectionIds": []string{"c1"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	pins := decodePins(t, doJSON(t, "GET", srv.URL+"/api/collections/c1/pins", nil))
	require.Len(t, pins, 1)
	assert.Equal(t, "p1", pins[0].PostID)

	resp = doJSON(t, "DELETE", srv.URL+"/api/users/alice/saved_pins/p1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Empty(t, decodePins(t, doJSON(t, "GET", srv.URL+"/api/collections/c1/pins", nil)))
	assert.Empty(t, decodePins(t, doJSON(t, "GET", srv.URL+"/api/users/alice/saved_pins", nil)))
}

func TestLikeUnlikeEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, "POST", srv.URL+"/api/pins", model.Pin{PostID: "p1", UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for i := 0; i < 2; i++ {
		resp = doJSON(t, "POST", srv.URL+"/api/users/alice/likes/p1", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
	liked := decodePins(t, doJSON(t, "GET", srv.URL+"/api/users/alice/liked_posts", nil))
	require.Len(t, liked, 1)
	assert.ElementsMatch(t, []string{"alice"}, liked[0].Likes)

	resp = doJSON(t, "DELETE", srv.URL+"/api/users/alice/likes/p1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, decodePins(t, doJSON(t, "GET", srv.URL+"/api/users/alice/liked_posts", nil)))
}

func TestDeletePinCascade(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, "POST", srv.URL+"/api/pins", model.Pin{PostID: "p1", UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, "POST", srv.URL+"/api/collections", model.Collection{CollectionID: "c1", UserID: "alice", CollectionName: "spots"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, "POST", srv.URL+"/api/users/alice/saved_pins/p1",
		map[string]interface{}{"collectionIds": []string{"c1"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "DELETE", srv.URL+"/api/users/alice/pins/p1", nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "GET", srv.URL+"/api/pins/p1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
	assert.Empty(t, decodePins(t, doJSON(t, "GET", srv.URL+"/api/collections/c1/pins", nil)))
}

func TestBatchCreateAndLocationSearch(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, "POST", srv.URL+"/api/users", model.User{UserID: "alice"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	batch := []model.Pin{
		{PostID: "p1", UserID: "alice", Location: "gastown"},
		{PostID: "p2", UserID: "alice", Location: "gastown"},
		{PostID: "p3", UserID: "alice", Location: "kitsilano"},
	}
	resp = doJSON(t, "POST", srv.URL+"/api/pins/batch", batch)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	pins := decodePins(t, doJSON(t, "GET", srv.URL+"/api/pins/location/gastown", nil))
	assert.Len(t, pins, 2)

	pins = decodePins(t, doJSON(t, "GET", srv.URL+"/api/users/alice/pins", nil))
	assert.Len(t, pins, 3)

	// Rejected batches: empty and invalid
	resp = doJSON(t, "POST", srv.URL+"/api/pins/batch", []model.Pin{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/health", "/api/health/db"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("path %s", path))
		resp.Body.Close()
	}
}
