package signer

import (
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T) *btcec.PrivateKey {
	t.Helper()

	seed := sha256.Sum256([]byte("alarms-dispatcher test key"))
	key, _ := btcec.PrivKeyFromBytes(seed[:])
	return key
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	identity, err := NewIdentity(testKey(t), "nolus", "nolus-local", 42, 7)
	require.NoError(t, err)

	require.Equal(t, "nolus-local", identity.ChainID())
	require.Equal(t, uint64(42), identity.AccountNumber())
	require.Equal(t, uint64(7), identity.Sequence())
	require.True(t, len(identity.Address()) > len("nolus1"))
	require.Equal(t, "nolus1", identity.Address()[:6])
	require.Len(t, identity.PubKeyCompressed(), 33)
}

func TestNewIdentity_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewIdentity(nil, "nolus", "nolus-local", 0, 0)
	require.ErrorContains(t, err, "private key is required")

	_, err = NewIdentity(testKey(t), "nolus", "", 0, 0)
	require.ErrorContains(t, err, "chain id is required")

	_, err = NewIdentity(testKey(t), "", "nolus-local", 0, 0)
	require.ErrorContains(t, err, "prefix")
}

func TestIdentity_AdvanceSequence(t *testing.T) {
	t.Parallel()

	identity, err := NewIdentity(testKey(t), "nolus", "nolus-local", 1, 10)
	require.NoError(t, err)

	identity.AdvanceSequence()
	identity.AdvanceSequence()
	require.Equal(t, uint64(12), identity.Sequence())
}

func TestIdentity_BeginBuild(t *testing.T) {
	t.Parallel()

	identity, err := NewIdentity(testKey(t), "nolus", "nolus-local", 1, 0)
	require.NoError(t, err)

	release, err := identity.BeginBuild()
	require.NoError(t, err)

	_, err = identity.BeginBuild()
	require.ErrorIs(t, err, ErrBuildInProgress)

	release()

	release, err = identity.BeginBuild()
	require.NoError(t, err)
	release()
}

func TestIdentity_Sign(t *testing.T) {
	t.Parallel()

	key := testKey(t)
	identity, err := NewIdentity(key, "nolus", "nolus-local", 1, 0)
	require.NoError(t, err)

	msg := []byte("sign doc bytes")
	sig, err := identity.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	var r, s btcec.ModNScalar
	require.False(t, r.SetByteSlice(sig[:32]))
	require.False(t, s.SetByteSlice(sig[32:]))

	digest := sha256.Sum256(msg)
	require.True(t, ecdsa.NewSignature(&r, &s).Verify(digest[:], key.PubKey()))

	// RFC 6979 nonces make signing deterministic.
	again, err := identity.Sign(msg)
	require.NoError(t, err)
	require.Equal(t, sig, again)
}
