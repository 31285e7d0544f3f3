package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// UserClaims are JWT claims for user authentication
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// SessionClaims are JWT claims for session-scoped tokens. UserID is empty for
// anonymous sessions.
type SessionClaims struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// RegisterRequest is the request body for account registration
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}
