package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tasklist/webapp/types"
)

// carryCookies copies the cookies a previous response set onto a fresh
// request, the way a browser would.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	return req
}

func TestManagerSnapshotRoundTrip(t *testing.T) {
	manager := NewManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, manager.Create(rec, req, types.User{
		ID:     7,
		Name:   "Alice",
		Email:  "alice@example.com",
		Status: types.UserStatusActive,
	}))

	current, ok := manager.Current(carryCookies(t, rec))
	require.True(t, ok)
	assert.Equal(t, 7, current.UserID)
	assert.Equal(t, "Alice", current.Name)
	assert.Equal(t, "alice@example.com", current.Email)
	assert.Equal(t, types.UserStatusActive, current.Status)
}

func TestManagerCurrentWithoutCookie(t *testing.T) {
	manager := NewManager("test-secret")

	_, ok := manager.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestManagerDestroy(t *testing.T) {
	manager := NewManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, manager.Create(rec, req, types.User{ID: 7, Name: "Alice"}))

	req = carryCookies(t, rec)
	rec = httptest.NewRecorder()
	require.NoError(t, manager.Destroy(rec, req))

	_, ok := manager.Current(carryCookies(t, rec))
	assert.False(t, ok)

	// Destroying again without a session is a no-op.
	require.NoError(t, manager.Destroy(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestManagerFlashesAreOneShot(t *testing.T) {
	manager := NewManager("test-secret")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	manager.Flash(rec, req, "Task added successfully!")

	req = carryCookies(t, rec)
	rec = httptest.NewRecorder()
	assert.Equal(t, []string{"Task added successfully!"}, manager.Flashes(rec, req))

	// Reading drains the queue.
	assert.Empty(t, manager.Flashes(httptest.NewRecorder(), carryCookies(t, rec)))
}
