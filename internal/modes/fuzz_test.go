package modes

import (
	"bytes"
	"testing"
)

// FuzzCTRRoundTrip asserts the unconditional CTR symmetry: re-applying
// the keystream always recovers the input, for any sequence, key and
// nonce.
func FuzzCTRRoundTrip(f *testing.F) {
	f.Add([]byte{}, byte(0x00), byte(0x00))
	f.Add([]byte{0x48, 0x69, 0x21}, byte(0x2B), byte(0x5D))
	f.Add(bytes.Repeat([]byte{0xFF}, 300), byte(0xFF), byte(0xFF))

	f.Fuzz(func(t *testing.T, seq []byte, key, nonce byte) {
		got := CTRDecrypt(CTREncrypt(seq, key, nonce), key, nonce)
		if !bytes.Equal(got, seq) {
			t.Fatalf("CTR round trip failed: got %x want %x", got, seq)
		}
	})
}

// FuzzModeLengths asserts that every mode preserves sequence length and
// leaves its input untouched.
func FuzzModeLengths(f *testing.F) {
	f.Add([]byte{0x01, 0x02, 0x03}, byte(0x2B), byte(0xC3))

	f.Fuzz(func(t *testing.T, seq []byte, key, iv byte) {
		orig := bytes.Clone(seq)
		for name, out := range map[string][]byte{
			"ECBEncrypt": ECBEncrypt(seq, key),
			"ECBDecrypt": ECBDecrypt(seq, key),
			"CBCEncrypt": CBCEncrypt(seq, key, iv),
			"CBCDecrypt": CBCDecrypt(seq, key, iv),
			"CTREncrypt": CTREncrypt(seq, key, iv),
			"CTRDecrypt": CTRDecrypt(seq, key, iv),
		} {
			if len(out) != len(seq) {
				t.Fatalf("%s changed the sequence length: %d -> %d", name, len(seq), len(out))
			}
		}
		if !bytes.Equal(seq, orig) {
			t.Fatal("a mode mutated its input sequence")
		}
	})
}
