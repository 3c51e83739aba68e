package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/tasklist/webapp/internal/session"
)

type contextKey string

const contextSessionKey contextKey = "session"

// currentFromContext returns the session snapshot injected by
// RequireSession.
func currentFromContext(ctx context.Context) (session.Current, error) {
	current, ok := ctx.Value(contextSessionKey).(session.Current)
	if !ok || current.UserID < 1 {
		return session.Current{}, errors.New("missing session")
	}
	return current, nil
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

// logRenderError reports a template failure. By the time rendering
// fails part of the response may already be written, so this is
// best-effort logging only.
func logRenderError(name string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "render %s: %v\n", name, err)
	}
}
