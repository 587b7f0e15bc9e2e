//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"belegcheck/internal/domain"
	"belegcheck/pkg/testutil/containers"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	store := NewRedisStore(rc.Client, time.Minute)

	miss, err := store.Get(ctx, "ATU12345678")
	require.NoError(t, err)
	assert.Nil(t, miss)

	info := &domain.ViesValidationInfo{
		CountryCode: "AT",
		VatNumber:   "U12345678",
		Valid:       true,
		Name:        "Test GmbH",
		Address:     "Teststrasse 1, 1010 Wien",
		CheckedAt:   time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Set(ctx, "ATU12345678", info))

	hit, err := store.Get(ctx, "ATU12345678")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, info.Name, hit.Name)
	assert.Equal(t, info.Valid, hit.Valid)
	assert.Equal(t, info.CheckedAt, hit.CheckedAt)
}

func TestRedisStoreTTL(t *testing.T) {
	ctx := context.Background()
	rc := containers.NewRedisContainer(t)
	store := NewRedisStore(rc.Client, time.Second)

	require.NoError(t, store.Set(ctx, "DE123456789", &domain.ViesValidationInfo{Valid: true}))

	hit, err := store.Get(ctx, "DE123456789")
	require.NoError(t, err)
	assert.NotNil(t, hit)

	time.Sleep(1500 * time.Millisecond)

	expired, err := store.Get(ctx, "DE123456789")
	require.NoError(t, err)
	assert.Nil(t, expired)
}
