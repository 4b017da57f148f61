// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package store

const (
	createKVTable = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`

	getKVValue = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	setKVValue = `
		INSERT INTO kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	removeKVValue = `
		DELETE FROM kv
		WHERE key = $1;`
)
