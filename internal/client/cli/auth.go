package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, name and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, email, string(password), name); err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintln(a.out, "Success! You can login now.")
	return nil
}

// Login prompts for credentials and starts a session. Bad credentials (403)
// and malformed input (422) get their own messages.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		var he *client.HTTPError
		if errors.As(err, &he) {
			switch he.Status {
			case http.StatusForbidden:
				fmt.Fprintln(a.out, "Login failed: invalid email or password.")
				return err
			case http.StatusUnprocessableEntity:
				fmt.Fprintln(a.out, "Login failed: check the email and password format.")
				return err
			}
		}
		return a.report(ctx, err)
	}

	a.resetRecords()
	a.sess = session.Session{Token: res.Token, UserID: res.User.ID}
	a.userName = res.User.Name
	if a.userName == "" {
		a.userName = res.User.Email
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", a.userName)
	return nil
}

// Logout clears the persisted session and every loaded list.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return a.report(ctx, err)
	}
	a.sess = session.Session{}
	a.userName = ""
	a.resetRecords()
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
