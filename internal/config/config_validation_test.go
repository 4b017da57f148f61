package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServerConfigValidate(t *testing.T) {
	valid := ServerConfig{
		App:     ServerApp{TokenSignKey: "secret", TokenIssuer: "pawtrail", TokenDuration: time.Hour},
		Server:  ServerHTTP{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
		Storage: ServerStorage{DB: ServerDB{DSN: "postgres://localhost/pawtrail"}},
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *ServerConfig) {}, wantErr: nil},
		{
			name:    "missing dsn",
			mutate:  func(cfg *ServerConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *ServerConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "remote mode",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: 15 * time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "pawtrail.db"}},
			},
			wantErr: nil,
		},
		{
			name: "fallback mode without remote address",
			cfg: ClientConfig{
				Storage: ClientStorage{DB: ClientDB{DSN: "pawtrail.db"}},
			},
			wantErr: nil,
		},
		{
			name: "remote address without timeout",
			cfg: ClientConfig{
				Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"},
				Storage: ClientStorage{DB: ClientDB{DSN: "pawtrail.db"}},
			},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing dsn",
			cfg:     ClientConfig{},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "in-memory dsn rejected",
			cfg: ClientConfig{
				Storage: ClientStorage{DB: ClientDB{DSN: "file::memory:?cache=shared"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.validate(), tt.wantErr)
		})
	}
}

func TestClientConfigRemote(t *testing.T) {
	cfg := ClientConfig{}
	assert.False(t, cfg.Remote())

	cfg.Adapter.HTTPAddress = "http://localhost:8080"
	assert.True(t, cfg.Remote())
}
