package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harentsoaR/doctors-portal-api/internal/models"
	"github.com/harentsoaR/doctors-portal-api/internal/store"
)

// fakeDirectory is an in-memory UserDirectory keyed by email.
type fakeDirectory struct {
	users   map[string]*models.User
	findErr error
	setErr  error
}

func newFakeDirectory(users ...*models.User) *fakeDirectory {
	d := &fakeDirectory{users: make(map[string]*models.User)}
	for _, u := range users {
		d.users[u.Email] = u
	}
	return d
}

func (d *fakeDirectory) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	user, ok := d.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return user, nil
}

func (d *fakeDirectory) SetRole(_ context.Context, email, role string) error {
	if d.setErr != nil {
		return d.setErr
	}
	user, ok := d.users[email]
	if !ok {
		user = &models.User{Email: email}
		d.users[email] = user
	}
	user.Role = role
	return nil
}

func TestAuthz_IsAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		users []*models.User
		email string
		want  bool
	}{
		{
			name:  "no record",
			email: "a@x.com",
			want:  false,
		},
		{
			name:  "record without role",
			users: []*models.User{{Email: "a@x.com"}},
			email: "a@x.com",
			want:  false,
		},
		{
			name:  "record with other role",
			users: []*models.User{{Email: "a@x.com", Role: "staff"}},
			email: "a@x.com",
			want:  false,
		},
		{
			name:  "admin record",
			users: []*models.User{{Email: "a@x.com", Role: models.RoleAdmin}},
			email: "a@x.com",
			want:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authz := NewAuthz(newFakeDirectory(tt.users...))
			got, err := authz.IsAdmin(context.Background(), tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthz_IsAdmin_StoreFailure(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	dir.findErr = errors.New("connection reset")

	authz := NewAuthz(dir)
	_, err := authz.IsAdmin(context.Background(), "a@x.com")
	assert.Error(t, err)
}

func TestAuthz_MakeAdmin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		users     []*models.User
		requester string
		target    string
		wantErr   error
	}{
		{
			name:      "anonymous requester refused",
			users:     []*models.User{{Email: "b@x.com"}},
			requester: "",
			target:    "b@x.com",
			wantErr:   ErrForbidden,
		},
		{
			name:      "requester without record refused",
			users:     []*models.User{{Email: "b@x.com"}},
			requester: "ghost@x.com",
			target:    "b@x.com",
			wantErr:   ErrForbidden,
		},
		{
			name:      "ordinary requester refused",
			users:     []*models.User{{Email: "a@x.com"}, {Email: "b@x.com"}},
			requester: "a@x.com",
			target:    "b@x.com",
			wantErr:   ErrForbidden,
		},
		{
			name:      "admin elevates existing target",
			users:     []*models.User{{Email: "a@x.com", Role: models.RoleAdmin}, {Email: "b@x.com"}},
			requester: "a@x.com",
			target:    "b@x.com",
		},
		{
			name:      "admin elevates unregistered target",
			users:     []*models.User{{Email: "a@x.com", Role: models.RoleAdmin}},
			requester: "a@x.com",
			target:    "new@x.com",
		},
		{
			name:      "self elevation by admin is a no-op",
			users:     []*models.User{{Email: "a@x.com", Role: models.RoleAdmin}},
			requester: "a@x.com",
			target:    "a@x.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := newFakeDirectory(tt.users...)
			authz := NewAuthz(dir)

			err := authz.MakeAdmin(context.Background(), tt.requester, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// Refusal never mutates the target.
				if target, ok := dir.users[tt.target]; ok {
					assert.False(t, target.IsAdmin())
				}
				return
			}

			require.NoError(t, err)
			isAdmin, err := authz.IsAdmin(context.Background(), tt.target)
			require.NoError(t, err)
			assert.True(t, isAdmin)
		})
	}
}

func TestAuthz_MakeAdmin_Monotonic(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory(
		&models.User{Email: "a@x.com", Role: models.RoleAdmin},
		&models.User{Email: "b@x.com"},
	)
	authz := NewAuthz(dir)

	require.NoError(t, authz.MakeAdmin(context.Background(), "a@x.com", "b@x.com"))

	// Once admin, always admin: re-elevation by anyone changes nothing,
	// refusal by a non-admin demotes nothing.
	require.NoError(t, authz.MakeAdmin(context.Background(), "b@x.com", "b@x.com"))
	assert.ErrorIs(t, authz.MakeAdmin(context.Background(), "ghost@x.com", "b@x.com"), ErrForbidden)

	isAdmin, err := authz.IsAdmin(context.Background(), "b@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestAuthz_AdminBootstrapChain(t *testing.T) {
	t.Parallel()

	dir := newFakeDirectory()
	authz := NewAuthz(dir)
	ctx := context.Background()

	// Nobody exists yet.
	isAdmin, err := authz.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// A non-admin cannot bootstrap admin from nothing.
	assert.ErrorIs(t, authz.MakeAdmin(ctx, "a@x.com", "a@x.com"), ErrForbidden)

	// Registration with the admin role seeds the first admin.
	require.NoError(t, dir.SetRole(ctx, "a@x.com", models.RoleAdmin))
	isAdmin, err = authz.IsAdmin(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	// The seeded admin can now elevate others.
	require.NoError(t, authz.MakeAdmin(ctx, "a@x.com", "b@x.com"))
	isAdmin, err = authz.IsAdmin(ctx, "b@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}
