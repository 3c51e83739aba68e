package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tasklist/webapp/internal/services"
	"github.com/tasklist/webapp/internal/session"
	"github.com/tasklist/webapp/internal/store"
	"github.com/tasklist/webapp/web"
)

// Flash notices shown to the user. These are the full vocabulary of
// failure signaling; no structured error ever reaches the client.
const (
	noticeStoreUnavailable = "Database connection error!"
	noticeDuplicateEmail   = "Email already registered!"
	noticeRegistered       = "Registration successful! Please login."
	noticeBadCredentials   = "Incorrect email or password"
	noticeAccountBlocked   = "Your account has been blocked by admin"
)

// AuthHandler serves the registration and login pages and manages the
// cookie session.
type AuthHandler struct {
	auth     *services.AuthService
	sessions *session.Manager
	views    *web.Renderer
}

func NewAuthHandler(auth *services.AuthService, sessions *session.Manager, views *web.Renderer) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, views: views}
}

// AuthRouter registers the public auth routes on the given router.
func AuthRouter(r chi.Router, handler *AuthHandler) {
	r.Get("/register", handler.ShowRegister)
	r.Post("/register_process", handler.Register)
	r.Get("/login", handler.ShowLogin)
	r.Post("/login_process", handler.Login)
	r.Get("/logout", handler.Logout)
}

// RequireSession gates protected routes. A request without a live
// session is redirected to the login page, never answered with an
// error.
func (h *AuthHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current, ok := h.sessions.Current(r)
		if !ok {
			redirect(w, r, "/login")
			return
		}

		ctx := context.WithValue(r.Context(), contextSessionKey, current)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type authPage struct {
	Flashes []string
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	page := authPage{Flashes: h.sessions.Flashes(w, r)}
	logRenderError("register.html", h.views.Render(w, "register.html", page))
}

// Register handles the registration form submission. No password
// strength or field format validation is performed.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, r, noticeStoreUnavailable)
		redirect(w, r, "/register")
		return
	}

	_, err := h.auth.Register(r.Context(), services.RegisterInput{
		Name:        r.PostFormValue("user_name"),
		Contact:     r.PostFormValue("contact_no"),
		Email:       r.PostFormValue("user_email"),
		Password:    r.PostFormValue("user_pass"),
		Gender:      r.PostFormValue("gender"),
		DateOfBirth: r.PostFormValue("date"),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			h.sessions.Flash(w, r, noticeDuplicateEmail)
		} else {
			h.sessions.Flash(w, r, noticeStoreUnavailable)
		}
		redirect(w, r, "/register")
		return
	}

	h.sessions.Flash(w, r, noticeRegistered)
	redirect(w, r, "/login")
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	page := authPage{Flashes: h.sessions.Flashes(w, r)}
	logRenderError("login.html", h.views.Render(w, "login.html", page))
}

// Login handles the credential form submission. A wrong password and
// an unknown email produce the same notice.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, r, noticeStoreUnavailable)
		redirect(w, r, "/login")
		return
	}

	user, err := h.auth.Login(r.Context(), r.PostFormValue("user_email"), r.PostFormValue("user_pass"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			h.sessions.Flash(w, r, noticeBadCredentials)
		case errors.Is(err, services.ErrAccountBlocked):
			h.sessions.Flash(w, r, noticeAccountBlocked)
		default:
			h.sessions.Flash(w, r, noticeStoreUnavailable)
		}
		redirect(w, r, "/login")
		return
	}

	if err := h.sessions.Create(w, r, user); err != nil {
		h.sessions.Flash(w, r, noticeStoreUnavailable)
		redirect(w, r, "/login")
		return
	}

	redirect(w, r, "/")
}

// Logout ends the session unconditionally. Calling it twice in a row
// is harmless.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.Destroy(w, r)
	redirect(w, r, "/login")
}
