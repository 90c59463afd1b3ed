package keymat

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestFromPassphraseDeterministic(t *testing.T) {
	t.Parallel()

	m1, err := FromPassphrase("swordfish")
	qt.Assert(t, qt.IsNil(err))
	m2, err := FromPassphrase("swordfish")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(m2, m1))
}

// TestFromPassphraseVectors pins the HKDF-SHA256 expansion so the
// derivation can never drift silently.
func TestFromPassphraseVectors(t *testing.T) {
	t.Parallel()

	testVectors := []struct {
		passphrase string
		want       Material
	}{
		{"swordfish", Material{Key: 0xFB, IV: 0xD2, Nonce: 0x7E}},
		{"correct horse battery staple", Material{Key: 0xF6, IV: 0x54, Nonce: 0xEA}},
	}
	for _, vec := range testVectors {
		got, err := FromPassphrase(vec.passphrase)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, vec.want))
	}
}

func TestFromPassphraseDistinct(t *testing.T) {
	t.Parallel()

	m1, err := FromPassphrase("swordfish")
	qt.Assert(t, qt.IsNil(err))
	m2, err := FromPassphrase("swordfish2")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsFalse(m1 == m2))
}

func TestFromPassphraseEmpty(t *testing.T) {
	t.Parallel()

	_, err := FromPassphrase("")
	qt.Assert(t, qt.ErrorMatches(err, `keymat: passphrase must not be empty`))
}
