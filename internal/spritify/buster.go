package spritify

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// CacheBuster returns the suffix appended to the sprite URL. It receives the
// encoded composite so implementations may derive the suffix from content.
type CacheBuster func(composite []byte) string

// Cache buster modes accepted by BusterFor
const (
	BusterHash   = "hash"
	BusterRandom = "random"
	BusterNone   = "none"
)

// HashBuster derives the suffix from the composite's content, so it only
// changes when the spritesheet does.
func HashBuster(composite []byte) string {
	sum := blake3.Sum256(composite)
	return "?v=" + hex.EncodeToString(sum[:4])
}

// RandomBuster returns a new suffix on every run
func RandomBuster([]byte) string {
	id := uuid.New()
	return "?" + hex.EncodeToString(id[:4])
}

// NoBuster leaves the URL alone
func NoBuster([]byte) string {
	return ""
}

// FixedBuster always returns suffix
func FixedBuster(suffix string) CacheBuster {
	return func([]byte) string { return suffix }
}

// BusterFor maps a configured mode to its CacheBuster
func BusterFor(mode string) (CacheBuster, error) {
	switch mode {
	case "", BusterHash:
		return HashBuster, nil
	case BusterRandom:
		return RandomBuster, nil
	case BusterNone:
		return NoBuster, nil
	default:
		return nil, fmt.Errorf("%w: unknown cache buster %q (want %s|%s|%s)",
			ErrInvalidConfig, mode, BusterHash, BusterRandom, BusterNone)
	}
}
