package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
	"github.com/Sunnycharan27/loopyncapp/pkg/logger"
)

type fakePresence struct {
	data map[string]map[string]any
}

func (f *fakePresence) GetPresence(_ context.Context, userID string) (map[string]any, error) {
	p, ok := f.data[userID]
	if !ok {
		return nil, errors.New("no presence recorded")
	}
	return p, nil
}

func TestProfileIncludesPresence(t *testing.T) {
	alice := user("u_alice", "alice", "Alice")
	pres := &fakePresence{data: map[string]map[string]any{
		"u_alice": {"status": "online"},
	}}
	svc := NewUserService(newFakeUserRepo(alice), pres, logger.Nop())

	p, err := svc.Profile(context.Background(), "u_alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Handle)
	assert.Equal(t, "online", p.Presence["status"])
}

func TestProfileWithoutPresenceStore(t *testing.T) {
	alice := user("u_alice", "alice", "Alice")
	svc := NewUserService(newFakeUserRepo(alice), nil, logger.Nop())

	p, err := svc.Profile(context.Background(), "u_alice")
	require.NoError(t, err)
	assert.Nil(t, p.Presence)
}

func TestProfilePresenceMissOmitsField(t *testing.T) {
	alice := user("u_alice", "alice", "Alice")
	svc := NewUserService(newFakeUserRepo(alice), &fakePresence{}, logger.Nop())

	p, err := svc.Profile(context.Background(), "u_alice")
	require.NoError(t, err)
	assert.Nil(t, p.Presence)
}

func TestProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil, logger.Nop())
	_, err := svc.Profile(context.Background(), "u_ghost")
	require.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfileSelfOnly(t *testing.T) {
	alice := user("u_alice", "alice", "Alice")
	bob := user("u_bob", "bob", "Bob")
	svc := NewUserService(newFakeUserRepo(alice, bob), nil, logger.Nop())
	ctx := context.Background()

	name := "Alice Prime"
	_, err := svc.UpdateProfile(ctx, bob.ID, alice.ID, models.ProfileUpdate{Name: &name})
	require.ErrorIs(t, err, apperrors.ErrNotProfileOwner)

	u, err := svc.UpdateProfile(ctx, alice.ID, alice.ID, models.ProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Prime", u.Name)
}
