package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventfinder/auth-service/internal/model"
)

func TestRefreshTokenStore_SaveAndGetByToken(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()

	rt := model.RefreshToken{
		ID:        uuid.New(),
		Token:     "refresh-1",
		Kind:      model.TokenKindRefresh,
		ExpiresAt: time.Now().Add(time.Hour),
		UserID:    uuid.New(),
	}
	require.NoError(t, store.Save(ctx, rt))

	got, err := store.GetByToken(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, rt.ID, got.ID)

	_, err = store.GetByToken(ctx, "unknown")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestRefreshTokenStore_Save_GeneratesID(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()

	require.NoError(t, store.Save(ctx, model.RefreshToken{Token: "refresh-1", UserID: uuid.New()}))

	got, err := store.GetByToken(ctx, "refresh-1")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestRefreshTokenStore_ListValidByUser(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, model.RefreshToken{ID: uuid.New(), Token: "live", UserID: userID}))
	require.NoError(t, store.Save(ctx, model.RefreshToken{ID: uuid.New(), Token: "dead", UserID: userID, Revoked: true}))
	require.NoError(t, store.Save(ctx, model.RefreshToken{ID: uuid.New(), Token: "other", UserID: uuid.New()}))

	valid, err := store.ListValidByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, valid, 1)
	assert.Equal(t, "live", valid[0].Token)
}

func TestRefreshTokenStore_SaveAll(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()
	userID := uuid.New()

	tokens := []model.RefreshToken{
		{ID: uuid.New(), Token: "t1", UserID: userID},
		{ID: uuid.New(), Token: "t2", UserID: userID},
	}
	require.NoError(t, store.SaveAll(ctx, tokens))

	valid, err := store.ListValidByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, valid, 2)
}

func TestRefreshTokenStore_InUserScope_SerializesWriters(t *testing.T) {
	ctx := context.Background()
	store := NewRefreshTokenStore()
	userID := uuid.New()

	const workers = 16
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := store.InUserScope(ctx, userID, func(ctx context.Context, scoped model.RefreshTokenStore) error {
				valid, err := scoped.ListValidByUser(ctx, userID)
				if err != nil {
					return err
				}
				for i := range valid {
					valid[i].Revoked = true
				}
				if err := scoped.SaveAll(ctx, valid); err != nil {
					return err
				}
				return scoped.Save(ctx, model.RefreshToken{
					ID:     uuid.New(),
					Token:  uuid.NewString(),
					UserID: userID,
				})
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	valid, err := store.ListValidByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, valid, 1)
}
