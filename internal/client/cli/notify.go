package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/services"
	"github.com/dmitrijs2005/vmis/internal/resources"
)

// userMessage turns an error from a command into a one-line notification.
func userMessage(err error) string {
	var (
		ve *resources.ValidationError
		ne *client.NetworkError
		he *client.HTTPError
	)
	switch {
	case errors.As(err, &ve):
		return fmt.Sprintf("Invalid input: %s %s", ve.Field, ve.Reason)
	case errors.Is(err, services.ErrReloadFailed):
		return "Saved, but the list could not be refreshed. Run list again."
	case errors.As(err, &ne):
		return "Network error, please check your connection and try again."
	case errors.As(err, &he):
		switch he.Status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "Your session is no longer valid. Please login again."
		case http.StatusUnprocessableEntity:
			if he.Message != "" {
				return "Rejected by server: " + he.Message
			}
			return "Rejected by server: invalid input."
		}
		if he.Message != "" {
			return fmt.Sprintf("Server error (%d): %s", he.Status, he.Message)
		}
		return fmt.Sprintf("Server error (%d %s)", he.Status, he.StatusText)
	case errors.Is(err, client.ErrInvalidResponseShape):
		return "Unexpected response from server."
	}
	return "Error: " + err.Error()
}

// report prints err and drops the session when the server rejected it.
func (a *App) report(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	fmt.Fprintln(a.out, userMessage(err))
	if a.auth.Invalidate(ctx, err) {
		a.signedOut(ctx)
	}
	return err
}

func (a *App) signedOut(ctx context.Context) {
	a.sess = a.auth.Restore(ctx)
	if !a.sess.Authenticated() {
		a.userName = ""
		a.resetRecords()
	}
}
