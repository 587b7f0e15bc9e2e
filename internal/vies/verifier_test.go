package vies

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"belegcheck/internal/domain"
	"belegcheck/internal/vies/cache"
	"belegcheck/internal/vies/mocks"
)

func newTestVerifier(t *testing.T, client Client) *Verifier {
	t.Helper()
	store := cache.NewMemoryStore(5*time.Minute, 100)
	logger := slog.New(slog.DiscardHandler)
	return NewVerifier(client, store, 2*time.Second, logger)
}

func TestVerifyConfirmedMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().CheckVat(gomock.Any(), "AT", "U12345678").Return(&domain.ViesValidationInfo{
		CountryCode: "AT",
		VatNumber:   "U12345678",
		Valid:       true,
		Name:        "Test GmbH",
		Address:     "Teststrasse 1, 1010 Wien",
		CheckedAt:   time.Now(),
	}, nil)

	v := newTestVerifier(t, client)
	info := v.Verify(context.Background(), "ATU12345678", "Test")

	require.NotNil(t, info)
	assert.True(t, info.Valid)
	assert.Empty(t, info.Error)
	assert.GreaterOrEqual(t, info.NameMatch, 0.6)
}

func TestVerifyRegistryFailureIsInconclusive(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().CheckVat(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("registry returned status 502"))

	v := newTestVerifier(t, client)
	info := v.Verify(context.Background(), "ATU12345678", "Test")

	require.NotNil(t, info)
	assert.False(t, info.Valid)
	assert.Contains(t, info.Error, "502")
}

func TestVerifyUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	// Exactly one outbound call despite two verifications.
	client.EXPECT().CheckVat(gomock.Any(), "AT", "U12345678").Return(&domain.ViesValidationInfo{
		CountryCode: "AT",
		VatNumber:   "U12345678",
		Valid:       true,
		Name:        "Test GmbH",
		CheckedAt:   time.Now(),
	}, nil).Times(1)

	v := newTestVerifier(t, client)
	first := v.Verify(context.Background(), "ATU12345678", "Test")
	second := v.Verify(context.Background(), "ATU 1234 5678", "Test")

	assert.True(t, first.Valid)
	assert.True(t, second.Valid)
	assert.Equal(t, first.Name, second.Name)
}

func TestVerifyFailuresAreNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	gomock.InOrder(
		client.EXPECT().CheckVat(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout")),
		client.EXPECT().CheckVat(gomock.Any(), "AT", "U12345678").Return(&domain.ViesValidationInfo{
			Valid:     true,
			Name:      "Test GmbH",
			CheckedAt: time.Now(),
		}, nil),
	)

	v := newTestVerifier(t, client)
	first := v.Verify(context.Background(), "ATU12345678", "Test")
	assert.False(t, first.Valid)

	second := v.Verify(context.Background(), "ATU12345678", "Test")
	assert.True(t, second.Valid)
}

func TestVerifyNameMismatchScoresLow(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().CheckVat(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.ViesValidationInfo{
		Valid:     true,
		Name:      "Quix Zyw",
		CheckedAt: time.Now(),
	}, nil)

	v := newTestVerifier(t, client)
	info := v.Verify(context.Background(), "ATU12345678", "Bravado Ltd")

	assert.True(t, info.Valid)
	assert.Less(t, info.NameMatch, 0.6)
}
