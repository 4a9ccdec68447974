package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/meupdi/pdi/pkg/secrets"
)

// fileRecord is the on-disk layout. The credential lives under StorageKey.
type fileRecord struct {
	Token     string    `json:"authToken"`
	Encrypted bool      `json:"encrypted,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileStore persists the credential in a JSON file so it survives restarts.
type FileStore struct {
	mu        sync.Mutex
	path      string
	perm      fs.FileMode
	appKey    []byte
	deviceKey []byte
}

// FileStoreOption configures a FileStore.
type FileStoreOption func(*FileStore)

// WithEncryption encrypts the token at rest with AES-256-GCM.
// Both keys must be 32 bytes; see pkg/secrets.
func WithEncryption(appKey, deviceKey []byte) FileStoreOption {
	return func(s *FileStore) {
		s.appKey = appKey
		s.deviceKey = deviceKey
	}
}

// WithFileMode overrides the default 0600 file permissions.
func WithFileMode(perm fs.FileMode) FileStoreOption {
	return func(s *FileStore) {
		s.perm = perm
	}
}

// NewFileStore creates a store at path. The parent directory is created on first Save.
func NewFileStore(path string, opts ...FileStoreOption) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session: empty file store path")
	}

	s := &FileStore{path: path, perm: 0o600}
	for _, opt := range opts {
		opt(s)
	}

	if s.encrypted() {
		if len(s.appKey) != secrets.KeySize {
			return nil, secrets.ErrInvalidAppKey
		}
		if len(s.deviceKey) != secrets.KeySize {
			return nil, secrets.ErrInvalidWorkspaceKey
		}
	}
	return s, nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(_ context.Context) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("session: read %s: %w", s.path, err)
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Session{}, errors.Join(ErrCorrupted, err)
	}
	if rec.Token == "" {
		return Session{}, ErrNotFound
	}

	token := rec.Token
	if rec.Encrypted {
		if !s.encrypted() {
			return Session{}, errors.Join(ErrCorrupted, secrets.ErrInvalidAppKey)
		}
		token, err = secrets.DecryptString(s.appKey, s.deviceKey, rec.Token)
		if err != nil {
			return Session{}, errors.Join(ErrCorrupted, err)
		}
	}

	return Session{Token: token, UpdatedAt: rec.UpdatedAt}, nil
}

func (s *FileStore) Save(_ context.Context, sess Session) error {
	if sess.IsZero() {
		return ErrEmptyToken
	}

	rec := fileRecord{Token: sess.Token, UpdatedAt: sess.UpdatedAt}
	if s.encrypted() {
		ct, err := secrets.EncryptString(s.appKey, s.deviceKey, sess.Token)
		if err != nil {
			return err
		}
		rec.Token = ct
		rec.Encrypted = true
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAtomic(data)
}

func (s *FileStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) encrypted() bool {
	return len(s.appKey) > 0 || len(s.deviceKey) > 0
}

// writeAtomic writes to a temp file in the same directory and renames it over the target.
func (s *FileStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return fmt.Errorf("session: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("session: write temp file: %w", err)
	}
	if err := tmp.Chmod(s.perm); err != nil {
		tmp.Close()
		return fmt.Errorf("session: chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("session: rename to %s: %w", s.path, err)
	}
	return nil
}
