package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awkwardturtle/api/internal/apperr"
	"awkwardturtle/api/internal/models"
)

func TestFriendAdd_Symmetric(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	require.NoError(t, f.friend.Add(ctx, alice, "bob"))

	aliceFriends, err := f.friend.List(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, aliceFriends)

	bobFriends, err := f.friend.List(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, bobFriends)
}

func TestFriendAdd_SelfRejected(t *testing.T) {
	f := newFixture(t)

	alice := f.register(t, "alice")

	err := f.friend.Add(context.Background(), alice, "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOperation))
	assert.Equal(t, "You cannot add yourself as a friend", apperr.Detail(err))
}

func TestFriendAdd_UnknownTarget(t *testing.T) {
	f := newFixture(t)

	alice := f.register(t, "alice")

	err := f.friend.Add(context.Background(), alice, "nonexistent")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Equal(t, "User 'nonexistent' not found", apperr.Detail(err))
}

func TestFriendAdd_DuplicateEitherDirection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	require.NoError(t, f.friend.Add(ctx, alice, "bob"))

	err := f.friend.Add(ctx, alice, "bob")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "same direction duplicate")

	err = f.friend.Add(ctx, bob, "alice")
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "reverse direction duplicate")

	aliceFriends, err := f.friend.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, aliceFriends, 1, "no duplicate edge created")
}

func TestFriendAdd_NotifiesTarget(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	require.NoError(t, f.friend.Add(ctx, alice, "bob"))

	require.Len(t, f.notifier.events, 1)
	event := f.notifier.events[0]
	assert.Equal(t, bob.ID, event.OwnerID)
	assert.Equal(t, models.NotificationFriendRequest, event.Type)
	require.NotNil(t, event.RelatedID)
	assert.Equal(t, alice.ID, *event.RelatedID)
}

func TestFriendRemove(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	require.NoError(t, f.friend.Add(ctx, alice, "bob"))
	require.NoError(t, f.friend.Remove(ctx, bob, "alice"), "either side may remove")

	aliceFriends, err := f.friend.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, aliceFriends)

	bobFriends, err := f.friend.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobFriends)
}

func TestFriendRemove_NotFriends(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.register(t, "alice")
	f.register(t, "bob")

	err := f.friend.Remove(ctx, alice, "bob")
	assert.True(t, apperr.IsKind(err, apperr.KindInvalidOperation))
	assert.Equal(t, "User 'bob' is not your friend", apperr.Detail(err))

	err = f.friend.Remove(ctx, alice, "ghost")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
