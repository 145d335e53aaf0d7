package postgres

import (
	"testing"
	"time"

	"swirl/internal/domain/entity"
	"swirl/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushToken(ownerID uuid.UUID, token string) *entity.PushToken {
	now := time.Now()

	return &entity.PushToken{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Token:     token,
		Device:    entity.DeviceWeb,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPushTokenRepository_UpsertToken_MovesTokenToNewOwner(t *testing.T) {
	db := openTestDB(t)
	ctx := testContext(t)
	repo := NewPushTokenRepository(db)
	alice, bob := uuid.New(), uuid.New()
	token := "device-" + uuid.NewString()

	first, err := repo.UpsertToken(ctx, newTestPushToken(alice, token))
	require.NoError(t, err)
	require.NoError(t, repo.DeactivateOwnedToken(ctx, alice, token))

	second, err := repo.UpsertToken(ctx, newTestPushToken(bob, token))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "conflict on token updates the existing row")
	assert.Equal(t, bob, second.OwnerID)
	assert.True(t, second.IsActive)

	aliceTokens, err := repo.FindTokensByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, aliceTokens)

	bobTokens, err := repo.FindActiveTokensByOwner(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobTokens, 1)
	assert.Equal(t, token, bobTokens[0].Token)
}

func TestPushTokenRepository_DeactivateOwnedToken_OtherOwner(t *testing.T) {
	db := openTestDB(t)
	ctx := testContext(t)
	repo := NewPushTokenRepository(db)
	owner := uuid.New()
	token := "device-" + uuid.NewString()

	_, err := repo.UpsertToken(ctx, newTestPushToken(owner, token))
	require.NoError(t, err)

	err = repo.DeactivateOwnedToken(ctx, uuid.New(), token)
	assert.True(t, errors.Is(err, repository.ErrPushTokenNotFound))

	active, err := repo.FindActiveTokensByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, active, 1, "another user's request leaves the token active")

	require.NoError(t, repo.DeactivateOwnedToken(ctx, owner, token))
	active, err = repo.FindActiveTokensByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestPushTokenRepository_DeactivateTokens(t *testing.T) {
	db := openTestDB(t)
	ctx := testContext(t)
	repo := NewPushTokenRepository(db)
	owner := uuid.New()
	dead, alive := "device-"+uuid.NewString(), "device-"+uuid.NewString()

	for _, token := range []string{dead, alive} {
		_, err := repo.UpsertToken(ctx, newTestPushToken(owner, token))
		require.NoError(t, err)
	}

	require.NoError(t, repo.DeactivateTokens(ctx, []string{dead}))

	active, err := repo.FindActiveTokensByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, alive, active[0].Token)
}
