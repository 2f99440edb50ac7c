package controller

import (
	"context"

	"bookshelf_cli/internal/apiclient"
	"bookshelf_cli/internal/model"
)

type RegisterClient interface {
	Register(ctx context.Context, reg model.Registration) (model.User, error)
}

type RegisterSnapshot struct {
	State  State
	Form   model.Registration
	ErrMsg string
}

type RegisterController struct {
	notifier
	auth RegisterClient
	nav  Navigator

	state  State
	form   model.Registration
	errMsg string
}

func NewRegister(auth RegisterClient, nav Navigator) *RegisterController {
	return &RegisterController{auth: auth, nav: nav, state: StateIdle}
}

func (c *RegisterController) Snapshot() RegisterSnapshot {
	return RegisterSnapshot{State: c.state, Form: c.form, ErrMsg: c.errMsg}
}

func (c *RegisterController) SetForm(form model.Registration) {
	if c.state == StateLoading {
		return
	}
	c.form = form
	c.notify()
}

// Submit registers the account. No session is established; on success the
// controller navigates to the login view with the success flag set.
func (c *RegisterController) Submit(ctx context.Context) {
	if c.state == StateLoading {
		return
	}

	if err := validate.Struct(c.form); err != nil {
		c.state = StateError
		c.errMsg = msgRequiredRegFields
		c.notify()
		return
	}

	c.state = StateLoading
	c.errMsg = ""
	c.notify()

	if _, err := c.auth.Register(ctx, c.form); err != nil {
		c.state = StateError
		c.errMsg = apiclient.ErrorMessage(err, msgRegisterFailed)
		c.notify()
		return
	}

	c.state = StateSuccess
	c.notify()

	c.nav.Navigate("/login?registered=true")
}
