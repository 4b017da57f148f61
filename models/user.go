// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password and never leaves the server.
type User struct {
	UserID       int64     `json:"user_id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
