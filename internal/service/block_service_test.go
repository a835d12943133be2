package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sunnycharan27/loopyncapp/internal/apperrors"
	"github.com/Sunnycharan27/loopyncapp/internal/models"
)

func TestBlockCascade(t *testing.T) {
	f, alice, bob := twoUsers()
	ctx := context.Background()

	require.NoError(t, f.friends.CreateFriendship(ctx, alice.ID, bob.ID))
	// pending requests in both directions to exercise the full cascade
	require.NoError(t, f.friends.CreateRequest(ctx, &models.FriendRequest{
		ID: "r1", FromUserID: alice.ID, ToUserID: bob.ID, Status: models.FriendRequestPending,
	}))
	require.NoError(t, f.friends.CreateRequest(ctx, &models.FriendRequest{
		ID: "r2", FromUserID: bob.ID, ToUserID: alice.ID, Status: models.FriendRequestPending,
	}))

	require.NoError(t, f.blockSvc.Block(ctx, alice.ID, bob.ID))

	friends, err := f.friends.AreFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, friends)

	r1, err := f.friends.GetRequest(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestCancelled, r1.Status)
	r2, err := f.friends.GetRequest(ctx, "r2")
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestCancelled, r2.Status)

	blocked, err := f.blocks.IsBlocked(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, blocked)
	// the relation is directed
	reverse, err := f.blocks.IsBlocked(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestBlockIdempotent(t *testing.T) {
	f, alice, bob := twoUsers()
	ctx := context.Background()

	require.NoError(t, f.blockSvc.Block(ctx, alice.ID, bob.ID))
	require.NoError(t, f.blockSvc.Block(ctx, alice.ID, bob.ID))

	blocks, err := f.blockSvc.ListBlocks(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, blocks, 1)
}

func TestBlockValidation(t *testing.T) {
	f, alice, _ := twoUsers()
	ctx := context.Background()

	require.ErrorIs(t, f.blockSvc.Block(ctx, alice.ID, alice.ID), apperrors.ErrSelfTarget)
	require.ErrorIs(t, f.blockSvc.Block(ctx, alice.ID, "u_ghost"), apperrors.ErrUserNotFound)
}

func TestUnblock(t *testing.T) {
	f, alice, bob := twoUsers()
	ctx := context.Background()

	require.ErrorIs(t, f.blockSvc.Unblock(ctx, alice.ID, bob.ID), apperrors.ErrBlockNotFound)

	require.NoError(t, f.blockSvc.Block(ctx, alice.ID, bob.ID))
	require.NoError(t, f.blockSvc.Unblock(ctx, alice.ID, bob.ID))

	blocked, err := f.blocks.IsBlocked(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestMuteLifecycle(t *testing.T) {
	f, alice, bob := twoUsers()
	ctx := context.Background()

	require.ErrorIs(t, f.blockSvc.Mute(ctx, alice.ID, alice.ID), apperrors.ErrSelfTarget)
	require.ErrorIs(t, f.blockSvc.Unmute(ctx, alice.ID, bob.ID), apperrors.ErrMuteNotFound)

	require.NoError(t, f.blockSvc.Mute(ctx, alice.ID, bob.ID))
	require.NoError(t, f.blockSvc.Mute(ctx, alice.ID, bob.ID))
	mutes, err := f.blockSvc.ListMutes(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mutes, 1)

	// mute does not sever the friendship
	require.NoError(t, f.friends.CreateFriendship(ctx, alice.ID, bob.ID))
	require.NoError(t, f.blockSvc.Mute(ctx, alice.ID, bob.ID))
	friends, err := f.friends.AreFriends(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, friends)

	require.NoError(t, f.blockSvc.Unmute(ctx, alice.ID, bob.ID))
	muted, err := f.blocks.IsMuted(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, muted)
}
