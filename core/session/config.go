package session

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
)

// Store kinds accepted by Config.Store.
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config provides environment-based configuration for the credential store.
type Config struct {
	Store     string `env:"PDI_SESSION_STORE" envDefault:"file"`
	FilePath  string `env:"PDI_SESSION_FILE"`
	AppKey    string `env:"PDI_SESSION_APP_KEY"`    // hex, 32 bytes
	DeviceKey string `env:"PDI_SESSION_DEVICE_KEY"` // hex, 32 bytes
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{Store: StoreFile}
}

// DefaultFilePath returns <user config dir>/pdi/credentials.json,
// falling back to the working directory when no config dir is known.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".pdi", "credentials.json")
	}
	return filepath.Join(dir, "pdi", "credentials.json")
}

// EncryptionKeys hex-decodes AppKey and DeviceKey. Both are nil when neither
// is set, which means the store keeps the token in plain text.
func (c Config) EncryptionKeys() (appKey, deviceKey []byte, err error) {
	if c.AppKey == "" && c.DeviceKey == "" {
		return nil, nil, nil
	}
	if appKey, err = hex.DecodeString(c.AppKey); err != nil {
		return nil, nil, errors.Join(ErrInvalidKey, err)
	}
	if deviceKey, err = hex.DecodeString(c.DeviceKey); err != nil {
		return nil, nil, errors.Join(ErrInvalidKey, err)
	}
	return appKey, deviceKey, nil
}

// NewStoreFromConfig builds a file or memory store. Redis stores are built by
// integration/database/redis and return ErrUnknownStore here.
func NewStoreFromConfig(cfg Config) (Store, error) {
	switch cfg.Store {
	case StoreMemory:
		return NewMemoryStore(), nil
	case StoreFile, "":
		path := cfg.FilePath
		if path == "" {
			path = DefaultFilePath()
		}

		appKey, deviceKey, err := cfg.EncryptionKeys()
		if err != nil {
			return nil, err
		}
		var opts []FileStoreOption
		if appKey != nil {
			opts = append(opts, WithEncryption(appKey, deviceKey))
		}
		return NewFileStore(path, opts...)
	default:
		return nil, ErrUnknownStore
	}
}
