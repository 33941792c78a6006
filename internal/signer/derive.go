package signer

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/ripemd160"
)

// DefaultHDPath is the Cosmos BIP-44 derivation path (coin type 118).
const DefaultHDPath = "m/44'/118'/0'/0/0"

const (
	bip39SaltPrefix = "mnemonic"
	bip39Rounds     = 2048
	bip39SeedLen    = 64
)

// DeriveKey turns a BIP-39 mnemonic into the secp256k1 private key at
// the given BIP-32 derivation path.
func DeriveKey(mnemonic, passphrase, path string) (*btcec.PrivateKey, error) {
	words := strings.Fields(strings.TrimSpace(mnemonic))
	switch len(words) {
	case 12, 15, 18, 21, 24:
	default:
		return nil, fmt.Errorf("mnemonic must contain 12, 15, 18, 21 or 24 words, got %d", len(words))
	}

	seed := pbkdf2.Key(
		[]byte(strings.Join(words, " ")),
		[]byte(bip39SaltPrefix+passphrase),
		bip39Rounds,
		bip39SeedLen,
		sha512.New,
	)

	indexes, err := parseHDPath(path)
	if err != nil {
		return nil, fmt.Errorf("parse derivation path %q: %w", path, err)
	}

	// The extended-key version params only affect serialization, which
	// the dispatcher never performs.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("derive master key: %w", err)
	}
	for _, index := range indexes {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("derive child key %d: %w", index, err)
		}
	}

	privKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("extract private key: %w", err)
	}
	return privKey, nil
}

// AddressFromPubKey encodes the Cosmos account address of a secp256k1
// public key: bech32 over RIPEMD-160(SHA-256(compressed key)).
func AddressFromPubKey(pubKey *btcec.PublicKey, prefix string) (string, error) {
	if prefix == "" {
		return "", errors.New("address prefix is required")
	}

	sha := sha256.Sum256(pubKey.SerializeCompressed())
	hasher := ripemd160.New()
	hasher.Write(sha[:])
	payload := hasher.Sum(nil)

	converted, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address bits: %w", err)
	}
	address, err := bech32.Encode(prefix, converted)
	if err != nil {
		return "", fmt.Errorf("encode bech32 address: %w", err)
	}
	return address, nil
}

func parseHDPath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, errors.New("path must start with \"m\"")
	}
	if len(parts) == 1 {
		return nil, errors.New("path has no components")
	}

	indexes := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h")
		if hardened {
			part = part[:len(part)-1]
		}
		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", part, err)
		}
		if index >= hdkeychain.HardenedKeyStart {
			return nil, fmt.Errorf("component %d out of range", index)
		}
		if hardened {
			index += hdkeychain.HardenedKeyStart
		}
		indexes = append(indexes, uint32(index))
	}
	return indexes, nil
}
