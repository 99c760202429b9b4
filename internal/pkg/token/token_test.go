package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return New("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
}

func TestMintVerify_RoundTrip(t *testing.T) {
	svc := newTestService()

	for _, kind := range []Kind{KindAccess, KindRefresh} {
		tokenStr, err := svc.Mint(42, kind)
		require.NoError(t, err)
		require.NotEmpty(t, tokenStr)

		userID, err := svc.Verify(tokenStr, kind)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	}
}

func TestMint_DistinctTokens(t *testing.T) {
	// Two mints for the same user in the same instant must not collide;
	// rotation relies on the new value differing from the old.
	svc := newTestService()

	first, err := svc.Mint(42, KindRefresh)
	require.NoError(t, err)
	second, err := svc.Mint(42, KindRefresh)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify_CrossKindRejected(t *testing.T) {
	svc := newTestService()

	accessToken, err := svc.Mint(42, KindAccess)
	require.NoError(t, err)
	refreshToken, err := svc.Mint(42, KindRefresh)
	require.NoError(t, err)

	_, err = svc.Verify(accessToken, KindRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify(refreshToken, KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_SameSecretDifferentKindStillRejected(t *testing.T) {
	// Even with identical secrets the kind claim must keep the two
	// classes apart.
	svc := New("shared", "shared", time.Minute, time.Hour)

	accessToken, err := svc.Mint(7, KindAccess)
	require.NoError(t, err)

	_, err = svc.Verify(accessToken, KindRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	svc := newTestService()

	issued := time.Now()
	svc.now = func() time.Time { return issued }

	tokenStr, err := svc.Mint(42, KindAccess)
	require.NoError(t, err)

	// Still valid one tick before expiry.
	svc.now = func() time.Time { return issued.Add(15*time.Minute - time.Second) }
	userID, err := svc.Verify(tokenStr, KindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	// The expiry instant itself is already expired; a token is only
	// valid strictly before its exp claim.
	svc.now = func() time.Time { return issued.Add(15 * time.Minute) }
	_, err = svc.Verify(tokenStr, KindAccess)
	assert.ErrorIs(t, err, ErrExpired)

	// One tick after expiry always fails with ErrExpired.
	svc.now = func() time.Time { return issued.Add(15*time.Minute + time.Second) }
	_, err = svc.Verify(tokenStr, KindAccess)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := newTestService()

	tokenStr, err := svc.Mint(42, KindAccess)
	require.NoError(t, err)

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	_, err = svc.Verify(tampered, KindAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	svc := newTestService()

	for _, input := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.Verify(input, KindRefresh)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

func TestMint_UnknownKind(t *testing.T) {
	svc := newTestService()

	_, err := svc.Mint(42, Kind("session"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
