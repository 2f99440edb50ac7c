package controller

import (
	"context"
	"net/url"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type LoginClient interface {
	Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error)
}

type LoginSnapshot struct {
	State State
	Creds model.Credentials
	// Notice is the one-time "registration succeeded" line picked up from the
	// ?registered=true query flag.
	Notice string
	ErrMsg string
}

type LoginController struct {
	notifier
	auth LoginClient
	nav  Navigator

	state  State
	creds  model.Credentials
	notice string
	errMsg string
}

func NewLogin(auth LoginClient, nav Navigator) *LoginController {
	return &LoginController{auth: auth, nav: nav, state: StateIdle}
}

func (c *LoginController) Snapshot() LoginSnapshot {
	return LoginSnapshot{State: c.state, Creds: c.creds, Notice: c.notice, ErrMsg: c.errMsg}
}

// Mount reads the navigation query. Redirecting an already authenticated
// user away from this view is the public route guard's job, not the
// controller's.
func (c *LoginController) Mount(query url.Values) {
	if query.Get("registered") == "true" {
		c.notice = msgRegisteredNotice
	}
	c.notify()
}

func (c *LoginController) SetCredentials(creds model.Credentials) {
	if c.state == StateLoading {
		return
	}
	c.creds = creds
	c.notify()
}

// Submit logs in and navigates home on success. On failure the email stays
// populated, the password is cleared and nothing retries on its own.
func (c *LoginController) Submit(ctx context.Context) {
	if c.state == StateLoading {
		return
	}

	if err := validate.Struct(c.creds); err != nil {
		c.state = StateError
		c.errMsg = msgRequiredLoginField
		c.notify()
		return
	}

	c.state = StateLoading
	c.errMsg = ""
	c.notice = ""
	c.notify()

	if _, err := c.auth.Login(ctx, c.creds); err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgLoginFailed)
		c.creds.Password = ""
		c.notify()
		return
	}

	c.state = StateSuccess
	c.notify()

	c.nav.Navigate("/")
}
