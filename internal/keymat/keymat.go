// Package keymat derives the cipher's 8-bit key material from a
// passphrase, so callers don't have to invent key, IV and nonce bytes by
// hand. Derivation is HKDF-SHA256 with a fixed domain-separation string;
// the same passphrase always yields the same material.
package keymat

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// domainInfo separates this derivation from any other HKDF use of the
// same passphrase.
const domainInfo = "picofeistel-keymat-v1"

// Material holds one byte each of key, IV and nonce. The cipher only
// ever consumes single bytes, so this is the complete key material for
// all three modes.
type Material struct {
	Key   byte
	IV    byte
	Nonce byte
}

// FromPassphrase expands a passphrase into Material. The passphrase must
// be non-empty; there is no other failure mode.
func FromPassphrase(passphrase string) (Material, error) {
	if passphrase == "" {
		return Material{}, fmt.Errorf("keymat: passphrase must not be empty")
	}
	r := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(domainInfo))
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Material{}, fmt.Errorf("keymat: hkdf expand: %v", err)
	}
	return Material{Key: buf[0], IV: buf[1], Nonce: buf[2]}, nil
}
