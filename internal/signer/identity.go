// Package signer holds the dispatcher's account identity: the signing
// key, the chain binding, and the single mutable sequence counter.
package signer

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// ErrBuildInProgress reports an attempt to build a second transaction
// while one is already being built from the current sequence. Chain-side
// replay protection requires strict sequence ordering, so this is a
// programming error, not a recoverable condition.
var ErrBuildInProgress = errors.New("transaction build already in progress for this identity")

// Identity is the dispatcher's on-chain account. The sequence is the
// only mutable field and is owned by the single dispatch thread of
// control; it advances exactly once per observed commit outcome.
type Identity struct {
	address       string
	key           *btcec.PrivateKey
	chainID       string
	accountNumber uint64
	sequence      uint64
	building      atomic.Bool
}

// NewIdentity binds a private key to a chain and account. The bech32
// address is derived from the key with the given prefix.
func NewIdentity(key *btcec.PrivateKey, addressPrefix, chainID string, accountNumber, sequence uint64) (*Identity, error) {
	if key == nil {
		return nil, errors.New("private key is required")
	}
	if chainID == "" {
		return nil, errors.New("chain id is required")
	}

	address, err := AddressFromPubKey(key.PubKey(), addressPrefix)
	if err != nil {
		return nil, fmt.Errorf("derive account address: %w", err)
	}

	return &Identity{
		address:       address,
		key:           key,
		chainID:       chainID,
		accountNumber: accountNumber,
		sequence:      sequence,
	}, nil
}

// Address returns the bech32 account address.
func (i *Identity) Address() string { return i.address }

// ChainID returns the chain the identity signs for.
func (i *Identity) ChainID() string { return i.chainID }

// AccountNumber returns the chain-assigned account number.
func (i *Identity) AccountNumber() uint64 { return i.accountNumber }

// Sequence returns the sequence the next transaction must be bound to.
func (i *Identity) Sequence() uint64 { return i.sequence }

// AdvanceSequence moves to the next sequence. Called exactly once after
// a broadcast's commit outcome is observed, never before.
func (i *Identity) AdvanceSequence() { i.sequence++ }

// PubKeyCompressed returns the 33-byte compressed secp256k1 public key.
func (i *Identity) PubKeyCompressed() []byte {
	return i.key.PubKey().SerializeCompressed()
}

// BeginBuild takes the single build lease. It fails loudly if a build
// is already in flight, since two transactions must never be signed
// from the same sequence value. The returned release function ends the
// lease.
func (i *Identity) BeginBuild() (release func(), err error) {
	if !i.building.CompareAndSwap(false, true) {
		return nil, ErrBuildInProgress
	}
	return func() { i.building.Store(false) }, nil
}

// Sign produces the 64-byte r||s secp256k1 signature over the SHA-256
// digest of msg, as expected by SIGN_MODE_DIRECT.
func (i *Identity) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)
	compact, err := ecdsa.SignCompact(i.key, digest[:], false)
	if err != nil {
		return nil, fmt.Errorf("sign digest: %w", err)
	}
	// SignCompact prepends a recovery byte; the chain wants bare r||s.
	return compact[1:], nil
}
