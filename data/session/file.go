package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bookshelf_cli/internal/model"
	"bookshelf_cli/utils"
)

// FileStore persists the session on the user's machine as a single JSON file
// holding the token and the user profile. The two entries are written and
// removed together, so the store never holds one without the other.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(ctx context.Context, sess model.Session) error {
	op := "FileStore.Save"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start Save", slog.String("rqID", rqID), slog.String("op", op))

	data, err := json.Marshal(sess)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return errors.New("can't marshall session")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		slog.Error("failed creating session dir", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: create session dir - %w", op, err)
	}

	// write-then-rename keeps the token and user atomic from the reader's
	// perspective
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		slog.Error("failed writing session file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: write session file - %w", op, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		slog.Error("failed renaming session file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: rename session file - %w", op, err)
	}

	slog.Debug("Save completed", slog.String("rqID", rqID), slog.String("op", op))

	return nil
}

// Load returns ErrNotFound when there is no session file, and also when the
// file is malformed or missing either entry: bad persisted data reads as "no
// session" rather than failing the caller.
func (s *FileStore) Load(ctx context.Context) (model.Session, error) {
	op := "FileStore.Load"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Debug("start Load", slog.String("rqID", rqID), slog.String("op", op))

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("session file not found", slog.String("rqID", rqID), slog.String("op", op))
			return model.Session{}, ErrNotFound
		}
		slog.Error("failed reading session file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, fmt.Errorf("%s: read session file - %w", op, err)
	}

	sess := model.Session{}

	if err := json.Unmarshal(data, &sess); err != nil {
		slog.Warn("malformed session file, treating as no session", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return model.Session{}, ErrNotFound
	}

	if sess.Token == "" || sess.User == (model.User{}) {
		slog.Warn("incomplete session file, treating as no session", slog.String("rqID", rqID), slog.String("op", op))
		return model.Session{}, ErrNotFound
	}

	slog.Debug("Load completed", slog.String("rqID", rqID), slog.String("op", op))

	return sess, nil
}

func (s *FileStore) Clear(ctx context.Context) error {
	op := "FileStore.Clear"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed removing session file", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return fmt.Errorf("%s: remove session file - %w", op, err)
	}
	return nil
}
