package services

import (
	"testing"
	"time"

	"github.com/folium-app/folium/pkg/internal/database"
	"github.com/folium-app/folium/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countEdges(t *testing.T, follower, author models.Account) int64 {
	var count int64
	require.NoError(t, database.C.Model(&models.Follow{}).
		Where("follower_id = ? AND author_id = ?", follower.ID, author.ID).
		Count(&count).Error)
	return count
}

func TestFollowGraph(t *testing.T) {
	teardown := setupTestDatabase(t)
	defer teardown()

	t.Run("FollowIsIdempotent", func(t *testing.T) {
		alice := makeAccount(t)
		bob := makeAccount(t)

		require.NoError(t, FollowAuthor(alice, bob))
		require.NoError(t, FollowAuthor(alice, bob))

		assert.EqualValues(t, 1, countEdges(t, alice, bob))
	})

	t.Run("SelfFollowCreatesNothing", func(t *testing.T) {
		alice := makeAccount(t)

		require.NoError(t, FollowAuthor(alice, alice))

		assert.EqualValues(t, 0, countEdges(t, alice, alice))
	})

	t.Run("UnfollowWithoutEdgeIsNoop", func(t *testing.T) {
		alice := makeAccount(t)
		bob := makeAccount(t)

		require.NoError(t, UnfollowAuthor(alice, bob))
		assert.EqualValues(t, 0, countEdges(t, alice, bob))
	})

	t.Run("UnfollowRemovesTheEdgeForGood", func(t *testing.T) {
		alice := makeAccount(t)
		bob := makeAccount(t)

		require.NoError(t, FollowAuthor(alice, bob))
		require.NoError(t, UnfollowAuthor(alice, bob))

		assert.EqualValues(t, 0, countEdges(t, alice, bob))

		// No tombstone left behind, so a re-follow works again
		require.NoError(t, FollowAuthor(alice, bob))
		assert.EqualValues(t, 1, countEdges(t, alice, bob))
	})

	t.Run("FollowingIDsHasNoDuplicatesNorSelf", func(t *testing.T) {
		alice := makeAccount(t)
		bob := makeAccount(t)
		carol := makeAccount(t)

		require.NoError(t, FollowAuthor(alice, bob))
		require.NoError(t, FollowAuthor(alice, bob))
		require.NoError(t, FollowAuthor(alice, carol))
		require.NoError(t, FollowAuthor(alice, alice))

		ids, err := ListFollowingIDs(alice)
		require.NoError(t, err)

		assert.Len(t, ids, 2)
		assert.ElementsMatch(t, []uint{bob.ID, carol.ID}, ids)
		assert.NotContains(t, ids, alice.ID)
	})

	t.Run("FeedIsUnionOfFollowedAuthorsNewestFirst", func(t *testing.T) {
		alice := makeAccount(t)
		bob := makeAccount(t)
		carol := makeAccount(t)
		dave := makeAccount(t)

		now := time.Now()
		oldest := makePost(t, bob, "first", now.Add(-3*time.Hour))
		middle := makePost(t, carol, "second", now.Add(-2*time.Hour))
		newest := makePost(t, bob, "third", now.Add(-time.Hour))
		makePost(t, dave, "unfollowed noise", now)

		require.NoError(t, FollowAuthor(alice, bob))
		require.NoError(t, FollowAuthor(alice, carol))

		feed, err := FeedForAccount(alice)
		require.NoError(t, err)

		require.Len(t, feed, 3)
		assert.Equal(t, []uint{newest.ID, middle.ID, oldest.ID}, lo.Map(feed, func(item models.Post, _ int) uint {
			return item.ID
		}))
	})

	t.Run("FeedWithoutFollowsIsEmpty", func(t *testing.T) {
		loner := makeAccount(t)
		somebody := makeAccount(t)
		makePost(t, somebody, "invisible to loner", time.Now())

		feed, err := FeedForAccount(loner)
		require.NoError(t, err)

		assert.Empty(t, feed)
	})
}
