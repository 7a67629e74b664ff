// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements admin identity for the management panel.

Admins log in with a username and password and receive a signed access
token. Every admin request passes through [Service.Authenticate], which
verifies the token, checks it against the Redis revocation list and loads
the account it names. Logging out revokes the presented token until it
would have expired anyway.
*/
package auth

import (
	"time"
)

// # Domain Entities

// AdminUser is an account of the management panel.
//
// The password hash is persisted with the account but never leaves the
// service; responses carry a [Profile].
type AdminUser struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"password_hash"`
	Email        string     `json:"email,omitempty"`
	FullName     string     `json:"full_name,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func newAdminUser() AdminUser {
	return AdminUser{IsActive: true}
}

// Profile is the client-safe view of an [AdminUser].
type Profile struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	FullName  string     `json:"full_name,omitempty"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
}

// Profile drops the credentials from the account.
func (user *AdminUser) Profile() Profile {
	return Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		LastLogin: user.LastLogin,
		CreatedAt: user.CreatedAt,
	}
}

// # Field Identifiers

const (
	FieldID          = "id"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldLastLogin   = "last_login"
	FieldUpdatedAt   = "updated_at"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldUserID      = "user_id"
)
