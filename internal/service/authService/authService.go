package authService

import (
	"context"
	"errors"
	"log/slog"

	"bookshelf_cli/data/session"
	"bookshelf_cli/internal/model"
	"bookshelf_cli/utils"
)

type Gateway interface {
	Post(ctx context.Context, path string, body any, out any) error
	SetAuthToken(token string)
	ClearAuthToken()
}

type SessionStore interface {
	Save(ctx context.Context, sess model.Session) error
	Load(ctx context.Context) (model.Session, error)
	Clear(ctx context.Context) error
}

// AuthService owns the session lifecycle: it is the only writer of the
// session store and of the gateway's auth token.
type AuthService struct {
	gateway Gateway
	store   SessionStore
}

func New(gateway Gateway, store SessionStore) *AuthService {
	return &AuthService{gateway: gateway, store: store}
}

// Restore re-attaches the bearer token from the persisted session on startup.
// A missing or malformed session leaves the gateway unauthenticated.
func (s *AuthService) Restore(ctx context.Context) {
	op := "authService.Restore"
	rqID := utils.GetRequestIDFromCtx(ctx)

	sess, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Error("got error from store.Load", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
		return
	}

	s.gateway.SetAuthToken(sess.Token)
}

// Login posts the credentials and, on success, saves the session and attaches
// the token to the gateway. Failures are propagated unchanged.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials) (model.AuthResponse, error) {
	op := "authService.Login"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var resp model.AuthResponse
	if err := s.gateway.Post(ctx, "/login", creds, &resp); err != nil {
		slog.Error("got error from gateway.Post", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.AuthResponse{}, err
	}

	if resp.Token != "" {
		if err := s.store.Save(ctx, model.Session{Token: resp.Token, User: resp.User}); err != nil {
			slog.Error("got error from store.Save", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
			return model.AuthResponse{}, err
		}
		s.gateway.SetAuthToken(resp.Token)
	}

	slog.Debug("Login completed", slog.String("rqID", rqID), slog.String("op", op))

	return resp, nil
}

// Register creates the account but does not establish a session; the caller
// redirects to the login view.
func (s *AuthService) Register(ctx context.Context, reg model.Registration) (model.User, error) {
	op := "authService.Register"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var user model.User
	if err := s.gateway.Post(ctx, "/register", reg, &user); err != nil {
		slog.Error("got error from gateway.Post", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.User{}, err
	}

	return user, nil
}

// Logout clears the persisted session and detaches the token. Client-side
// only; the backend is not called.
func (s *AuthService) Logout(ctx context.Context) error {
	op := "authService.Logout"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := s.store.Clear(ctx); err != nil {
		slog.Error("got error from store.Clear", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}

	s.gateway.ClearAuthToken()

	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context) (model.User, bool) {
	sess, err := s.store.Load(ctx)
	if err != nil {
		return model.User{}, false
	}
	return sess.User, true
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	sess, err := s.store.Load(ctx)
	return err == nil && sess.Token != ""
}
