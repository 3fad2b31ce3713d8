package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"roombooking/infras/otel"
	"roombooking/internal/domains/session/model"
	"roombooking/shared/constant"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	filePerm = 0o600
	dirPerm  = 0o700
)

// fileRepository keeps a JSON object of key/value entries on disk, one of which is the session.
type fileRepository struct {
	mu   sync.Mutex
	path string
	key  string
	otel otel.Otel
}

func NewFile(path, key string, otel otel.Otel) Session {
	return &fileRepository{
		path: path,
		key:  key,
		otel: otel,
	}
}

func (r *fileRepository) Load(ctx context.Context) (res model.Session, ok bool, err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.file.Load")
	defer scope.End()
	defer scope.TraceIfError(err)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return res, false, err
	}

	raw, found := entries[r.key]
	if !found || string(raw) == "null" {
		return res, false, nil
	}

	if err := json.Unmarshal(raw, &res); err != nil {
		log.Warn().Err(err).Str("path", r.path).Str("key", r.key).Msg("ignoring unreadable stored session")

		return model.Session{}, false, nil
	}

	return res, res.Valid(), nil
}

func (r *fileRepository) Store(ctx context.Context, sess model.Session) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.file.Store")
	defer scope.End()
	defer scope.TraceIfError(err)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	entries[r.key] = raw

	return r.write(entries)
}

func (r *fileRepository) Remove(ctx context.Context) (err error) {
	_, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.file.Remove")
	defer scope.End()
	defer scope.TraceIfError(err)

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.read()
	if err != nil {
		return err
	}

	if _, found := entries[r.key]; !found {
		return nil
	}

	delete(entries, r.key)

	return r.write(entries)
}

func (r *fileRepository) read() (map[string]json.RawMessage, error) {
	entries := map[string]json.RawMessage{}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return entries, nil
	}

	if err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to read session file")

		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("session file is corrupt, starting empty")

		return map[string]json.RawMessage{}, nil
	}

	return entries, nil
}

// write replaces the file atomically through a temp file in the same directory.
func (r *fileRepository) write(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()

		return fmt.Errorf("failed to set session file permissions: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close session file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		log.Error().Err(err).Str("path", r.path).Msg("failed to replace session file")

		return fmt.Errorf("failed to replace session file: %w", err)
	}

	return nil
}
