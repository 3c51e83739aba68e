package session

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/tasklist/webapp/types"
)

const (
	cookieName = "tasklist_session"
	maxAge     = 24 * 60 * 60
)

// Current is the snapshot of the user row taken at login time. It is
// what handlers see; it does not track later changes to the row.
type Current struct {
	UserID int
	Name   string
	Email  string
	Status int
}

// Manager wraps the cookie store holding both the login session and
// one-shot flash notices.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Create starts a session for user, snapshotting the fields the views
// need.
func (m *Manager) Create(w http.ResponseWriter, r *http.Request, user types.User) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values["user_id"] = user.ID
	sess.Values["user_name"] = user.Name
	sess.Values["user_email"] = user.Email
	sess.Values["status"] = user.Status
	return sess.Save(r, w)
}

// Destroy ends the current session. Calling it without an active
// session is a no-op, so logout is idempotent.
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	for key := range sess.Values {
		delete(sess.Values, key)
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// Current returns the logged-in user's snapshot, or false when the
// request carries no valid session.
func (m *Manager) Current(r *http.Request) (Current, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil {
		return Current{}, false
	}

	userID, ok := sess.Values["user_id"].(int)
	if !ok || userID < 1 {
		return Current{}, false
	}

	current := Current{UserID: userID}
	current.Name, _ = sess.Values["user_name"].(string)
	current.Email, _ = sess.Values["user_email"].(string)
	current.Status, _ = sess.Values["status"].(int)
	return current, true
}

// Flash queues a one-shot notice for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) {
	sess, _ := m.store.Get(r, cookieName)
	sess.AddFlash(message)
	_ = sess.Save(r, w)
}

// Flashes drains queued notices. Reading clears them.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess, _ := m.store.Get(r, cookieName)
	raw := sess.Flashes()
	if len(raw) > 0 {
		_ = sess.Save(r, w)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
