// Package feistel implements a miniature 8-bit block cipher built from a
// single Feistel half-round, a fixed 4-bit substitution box and a fixed
// bit permutation. The construction is a teaching toy: it demonstrates how
// the pieces of a Feistel-network cipher compose, not how to keep secrets.
package feistel

// sbox is the 4-bit substitution table, stored row-major. A nibble n
// selects row (n>>2)&3 and column n&3, so only the low 4 bits of the
// input are ever examined.
var sbox = [4][4]byte{
	{0xE, 0x4, 0xD, 0x1},
	{0x0, 0xA, 0x6, 0xC},
	{0x5, 0x9, 0x3, 0x7},
	{0xB, 0x2, 0xF, 0x8},
}

// pbox maps output bit position i to source bit position pbox[i],
// counting from the least significant bit. It is a derangement of 0..7
// but not an involution: applying Permute twice does not restore the
// input.
var pbox = [8]byte{1, 5, 2, 6, 3, 7, 4, 0}

// Inverse tables, derived from the forward tables at startup.
var (
	invSbox [16]byte
	invPbox [8]byte
)

func init() {
	for n := range invSbox {
		invSbox[Substitute(byte(n))] = byte(n)
	}
	for i, src := range pbox {
		invPbox[src] = byte(i)
	}
}

// Substitute maps a nibble through the S-box. The index arithmetic masks
// to the low 4 bits, so the function is total over all byte inputs.
func Substitute(n byte) byte {
	return sbox[(n>>2)&3][n&3]
}

// Permute relabels the bits of b according to the permutation table:
// bit i of the result is bit pbox[i] of the input.
func Permute(b byte) byte {
	var out byte
	for i, src := range pbox {
		out |= (b >> src & 1) << i
	}
	return out
}

// InversePermute undoes Permute exactly: Permute followed by
// InversePermute (in either order) is the identity.
func InversePermute(b byte) byte {
	var out byte
	for i, src := range invPbox {
		out |= (b >> src & 1) << i
	}
	return out
}

// round is the Feistel F-function: XOR the half with the subkey. The
// result may carry bits above the nibble; the S-box index masking
// truncates them downstream.
func round(half, key byte) byte {
	return half ^ key
}

// Encrypt transforms one block under key: the low nibble is passed
// through the round function and the S-box, then becomes the new low
// nibble while the untransformed low nibble moves up, and the combined
// byte is permuted.
//
// Note that the high nibble of the plaintext never reaches the output;
// Encrypt(b, k) == Encrypt(b&0x0F, k) for every b. The map is therefore
// not injective and no full inverse exists. This mirrors the reference
// construction bit for bit.
func Encrypt(block, key byte) byte {
	right := block & 0x0F
	substituted := Substitute(round(right, key))
	return Permute(right<<4 | substituted)
}

// Decrypt reproduces the reference decryption exactly, defects included.
// It does not invert Encrypt: the reference splits the ciphertext without
// first undoing the final permutation, re-applies the S-box forward
// instead of inverting it, and then permutes a second time on the way
// out. Decrypt(Encrypt(x, k), k) == x does not hold in general. Callers
// needing the recoverable part of a ciphertext should use RightHalf.
func Decrypt(block, key byte) byte {
	left := block >> 4
	right := block & 0x0F
	transformed := round(Substitute(left), key)
	return Permute(right<<4 | transformed)
}

// RightHalf recovers the low nibble of the plaintext that produced
// cipher under key. This is the only part of the plaintext Encrypt
// preserves. The recovery walks the encrypt path backwards: undo the
// permutation, un-substitute the low nibble and strip the subkey.
func RightHalf(cipher, key byte) byte {
	combined := InversePermute(cipher)
	return (invSbox[combined&0x0F] ^ key) & 0x0F
}

// IsCiphertext reports whether cipher lies in the image of Encrypt under
// key. The two nibbles of a genuine ciphertext are redundant: the low
// nibble must equal the S-box image of the high nibble XOR key. Each key
// admits exactly 16 valid ciphertexts, one per low plaintext nibble.
func IsCiphertext(cipher, key byte) bool {
	combined := InversePermute(cipher)
	right := combined >> 4
	return combined&0x0F == Substitute(round(right, key))
}
