package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// ErrForbidden means the requester lacks the privilege for the operation.
var ErrForbidden = errors.New("forbidden")

// UserDirectory is the slice of the user registry the gate needs.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, email, role string) error
}

// Authz decides admin capability questions against the user registry.
type Authz struct {
	users UserDirectory
}

func NewAuthz(users UserDirectory) *Authz {
	return &Authz{users: users}
}

// IsAdmin reports whether the identity carries the admin role. Unknown
// emails and ordinary users both answer false; only store failures error.
func (a *Authz) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up user: %w", err)
	}
	return user.IsAdmin(), nil
}

// MakeAdmin elevates target to admin, provided requester is a verified
// identity that is already admin. A requester with no registry record is
// the lowest-privilege state, never a lookup failure. The elevation itself
// is an upsert, so an unregistered target gains a record along with the
// role, and re-elevating an admin is a no-op.
func (a *Authz) MakeAdmin(ctx context.Context, requesterEmail, targetEmail string) error {
	if requesterEmail == "" {
		return ErrForbidden
	}

	requester, err := a.users.FindByEmail(ctx, requesterEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("failed to look up requester: %w", err)
	}
	if !requester.IsAdmin() {
		return ErrForbidden
	}

	if err := a.users.SetRole(ctx, targetEmail, models.RoleAdmin); err != nil {
		return fmt.Errorf("failed to elevate user: %w", err)
	}
	return nil
}
