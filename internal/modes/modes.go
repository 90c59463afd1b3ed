// Package modes layers the three classic modes of operation — ECB, CBC
// and CTR — over the one-byte feistel block cipher. Blocks are exactly
// one byte, so no padding is ever needed; every function returns a
// sequence of the same length as its input, and an empty input yields an
// empty output.
//
// Chaining state (CBC's previous block, CTR's counter) is local to each
// call. Concurrent invocations never share state.
package modes

import "github.com/AeonDave/picofeistel/internal/feistel"

// ECBEncrypt encrypts each block independently. Equal plaintext blocks
// under the same key produce equal ciphertext blocks; that leak is the
// documented weakness of the mode, not a defect of this implementation.
func ECBEncrypt(blocks []byte, key byte) []byte {
	out := make([]byte, len(blocks))
	for i, b := range blocks {
		out[i] = feistel.Encrypt(b, key)
	}
	return out
}

// ECBDecrypt applies the block decryption to each block independently.
func ECBDecrypt(blocks []byte, key byte) []byte {
	out := make([]byte, len(blocks))
	for i, b := range blocks {
		out[i] = feistel.Decrypt(b, key)
	}
	return out
}

// CBCEncrypt chains each plaintext block into the next: every block is
// XORed with the previous ciphertext block (the IV for the first) before
// encryption. Strictly sequential by construction.
func CBCEncrypt(blocks []byte, key, iv byte) []byte {
	out := make([]byte, len(blocks))
	prev := iv
	for i, b := range blocks {
		c := feistel.Encrypt(b^prev, key)
		out[i] = c
		prev = c
	}
	return out
}

// CBCDecrypt mirrors CBCEncrypt's chaining: each decrypted block is
// XORed with the previous ciphertext block (not the recovered
// plaintext), so block i depends only on ciphertext blocks i and i-1.
func CBCDecrypt(blocks []byte, key, iv byte) []byte {
	out := make([]byte, len(blocks))
	prev := iv
	for i, c := range blocks {
		out[i] = feistel.Decrypt(c, key) ^ prev
		prev = c
	}
	return out
}

// CTREncrypt XORs each block with a keystream byte obtained by
// encrypting nonce XOR counter, where the counter starts at zero and
// advances once per block. The counter is an 8-bit value, so the
// keystream repeats after 256 blocks.
func CTREncrypt(blocks []byte, key, nonce byte) []byte {
	out := make([]byte, len(blocks))
	for i, b := range blocks {
		out[i] = b ^ feistel.Encrypt(nonce^byte(i), key)
	}
	return out
}

// CTRDecrypt is CTREncrypt: the mode is symmetric, since decryption
// regenerates the identical keystream and XORs it back out.
func CTRDecrypt(blocks []byte, key, nonce byte) []byte {
	return CTREncrypt(blocks, key, nonce)
}
