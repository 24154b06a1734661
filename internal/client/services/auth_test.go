package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/vmis/internal/client/client"
	"github.com/dmitrijs2005/vmis/internal/client/session"
	"github.com/dmitrijs2005/vmis/internal/logging"
	"github.com/dmitrijs2005/vmis/internal/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okLogin() *client.LoginResult {
	return &client.LoginResult{Token: "tok1", User: client.User{ID: "u1", Email: "a@b.c", Name: "Ann"}}
}

func TestAuth_Login_SavesSession(t *testing.T) {
	api := &fakeAPI{LoginRet: okLogin()}
	st := &fakeStore{}
	svc := NewAuthService(api, st, logging.Discard())

	res, err := svc.Login(context.Background(), "  a@b.c ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Ann", res.User.Name)
	assert.Equal(t, "a@b.c", api.LastEmail)
	assert.Equal(t, "secret", api.LastPassword)
	assert.Equal(t, session.Session{Token: "tok1", UserID: "u1"}, svc.Restore(context.Background()))
}

func TestAuth_Login_BlankFieldsNeverReachNetwork(t *testing.T) {
	cases := []struct {
		email, password, field string
	}{
		{"", "x", "email"},
		{"   ", "x", "email"},
		{"a@b.c", "", "password"},
	}
	for _, tc := range cases {
		api := &fakeAPI{LoginRet: okLogin()}
		svc := NewAuthService(api, &fakeStore{}, logging.Discard())

		_, err := svc.Login(context.Background(), tc.email, tc.password)
		var ve *resources.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.field, ve.Field)
		assert.Zero(t, api.LoginCalls)
	}
}

func TestAuth_Login_ServerRejection(t *testing.T) {
	for _, status := range []int{403, 422} {
		api := &fakeAPI{LoginErr: &client.HTTPError{Status: status}}
		st := &fakeStore{}
		svc := NewAuthService(api, st, logging.Discard())

		_, err := svc.Login(context.Background(), "a@b.c", "bad")
		require.Error(t, err)
		assert.Equal(t, status, client.StatusOf(err))
		assert.False(t, st.sess.Authenticated())
	}
}

func TestAuth_Login_SaveFailureIsNotASession(t *testing.T) {
	saveErr := errors.New("disk full")
	st := &fakeStore{SaveErr: saveErr}
	svc := NewAuthService(&fakeAPI{LoginRet: okLogin()}, st, logging.Discard())

	_, err := svc.Login(context.Background(), "a@b.c", "secret")
	require.ErrorIs(t, err, saveErr)
	assert.False(t, svc.Restore(context.Background()).Authenticated())
}

func TestAuth_Register(t *testing.T) {
	api := &fakeAPI{}
	svc := NewAuthService(api, &fakeStore{}, logging.Discard())

	require.NoError(t, svc.Register(context.Background(), "a@b.c", "pw", " Ann "))
	assert.Equal(t, "Ann", api.LastName)

	var ve *resources.ValidationError
	require.ErrorAs(t, svc.Register(context.Background(), "a@b.c", "pw", ""), &ve)
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, 1, api.RegisterCalls)

	api.RegisterErr = &client.HTTPError{Status: 409}
	err := svc.Register(context.Background(), "a@b.c", "pw", "Ann")
	assert.Equal(t, 409, client.StatusOf(err))
}

func TestAuth_LogoutIsIdempotent(t *testing.T) {
	st := &fakeStore{sess: session.Session{Token: "t", UserID: "u"}}
	svc := NewAuthService(&fakeAPI{}, st, logging.Discard())

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, st.sess.Authenticated())

	st.ClearErr = errors.New("locked")
	require.ErrorIs(t, svc.Logout(context.Background()), st.ClearErr)
}

func TestAuth_Invalidate(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		cleared bool
	}{
		{"401", &client.HTTPError{Status: 401}, true},
		{"403 wrapped", errors.Join(errors.New("x"), &client.HTTPError{Status: 403}), true},
		{"500", &client.HTTPError{Status: 500}, false},
		{"network", &client.NetworkError{Err: errors.New("refused")}, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &fakeStore{sess: session.Session{Token: "t", UserID: "u"}}
			svc := NewAuthService(&fakeAPI{}, st, logging.Discard())

			assert.Equal(t, tt.cleared, svc.Invalidate(context.Background(), tt.err))
			assert.Equal(t, !tt.cleared, st.sess.Authenticated())
		})
	}
}
