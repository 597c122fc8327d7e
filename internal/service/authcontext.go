package service

import (
	"choir-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// CallerKind identifies how the caller authenticated
type CallerKind string

const (
	CallerKindAdmin CallerKind = "admin"
	CallerKindUser  CallerKind = "user"
)

// AuthContext carries the authenticated caller's identity into the service
// layer. Handlers build it from validated token claims.
type AuthContext struct {
	UserID   uuid.UUID
	Kind     CallerKind
	Category models.MemberCategory
}

// IsPrivileged reports whether the caller bypasses shift-scoped authorization
func (a *AuthContext) IsPrivileged() bool {
	return a.Kind == CallerKindAdmin
}
