package config

import (
	"fmt"
	"time"
)

// ServerApp holds token settings the server issues and verifies JWTs with.
type ServerApp struct {
	// TokenSignKey is the JWT signing secret.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string
	// TokenDuration is the token lifetime.
	TokenDuration time.Duration
}

// ServerHTTP holds inbound transport settings.
type ServerHTTP struct {
	// HTTPAddress is the listen address in "host:port" format.
	HTTPAddress string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerDB contains database connection settings for the server.
type ServerDB struct {
	// DSN is the PostgreSQL connection string.
	DSN string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds database settings.
	DB ServerDB
}

// ServerBlobs holds the object-store settings for photo presigning.
type ServerBlobs struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains token settings.
	App ServerApp
	// Server contains transport settings.
	Server ServerHTTP
	// Storage contains database settings.
	Storage ServerStorage
	// Blobs contains object-store settings.
	Blobs ServerBlobs
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Blobs: ServerBlobs{
			Endpoint:  cfg.Blobs.Endpoint,
			Region:    cfg.Blobs.Region,
			Bucket:    cfg.Blobs.Bucket,
			AccessKey: cfg.Blobs.AccessKey,
			SecretKey: cfg.Blobs.SecretKey,
		},
	}

	return serverCfg, serverCfg.validate()
}
