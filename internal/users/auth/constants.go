// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Default Account

// The account created on first start. Its password comes from configuration.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@legaldesign.com.tr"
	DefaultAdminFullName = "Admin User"
)

// # Messages

const (
	// MessageBadCredentials is the single login failure message, so callers
	// cannot tell an unknown user from a wrong password.
	MessageBadCredentials = "Incorrect username or password"

	MessageLoggedOut = "Logged out successfully"
)
