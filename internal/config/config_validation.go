// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package config

import "strings"

// validate checks the merged [StructuredConfig] before it is used at
// startup. The shared container itself has no invariants: which fields are
// required depends on the binary, so the real checks live on the
// [ServerConfig] and [ClientConfig] views.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validate allows an empty Adapter group: a client without a remote address
// runs in local-only fallback mode against its SQLite store.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
