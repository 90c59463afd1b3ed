// picofeistel is a command-line front end for the toy 8-bit Feistel
// cipher and its ECB/CBC/CTR modes. Blocks are given and printed as
// 8-digit binary strings, the way the cipher is usually worked through
// on paper.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AeonDave/picofeistel/internal/bintext"
	"github.com/AeonDave/picofeistel/internal/keymat"
	"github.com/AeonDave/picofeistel/internal/modes"
)

var (
	flagMode       = flag.String("mode", "ecb", "mode of operation: ecb, cbc or ctr")
	flagDecrypt    = flag.Bool("d", false, "decrypt instead of encrypt")
	flagKey        = flag.String("key", "", "8-bit key as a binary string, e.g. 00101011")
	flagIV         = flag.String("iv", "", "8-bit IV for cbc, as a binary string")
	flagNonce      = flag.String("nonce", "", "8-bit nonce for ctr, as a binary string")
	flagPassphrase = flag.String("passphrase", "", "derive key, IV and nonce from a passphrase instead of giving them explicitly")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: picofeistel [flags] [block ...]

Encrypts or decrypts a sequence of one-byte blocks, each written as an
8-digit binary string. Blocks are read from the arguments, or from
standard input when no arguments are given.

`)
	flag.PrintDefaults()
}

func main() { os.Exit(main1()) }

func main1() int {
	flag.Usage = usage
	flag.Parse()
	if err := run(flag.Args(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "picofeistel: %v\n", err)
		return 1
	}
	return 0
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	material, err := gatherMaterial()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if len(args) == 0 {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("reading standard input: %v", err)
		}
		input = string(raw)
	}
	blocks, err := bintext.ParseBlocks(input)
	if err != nil {
		return err
	}

	var out []byte
	switch *flagMode {
	case "ecb":
		if *flagDecrypt {
			out = modes.ECBDecrypt(blocks, material.Key)
		} else {
			out = modes.ECBEncrypt(blocks, material.Key)
		}
	case "cbc":
		if *flagDecrypt {
			out = modes.CBCDecrypt(blocks, material.Key, material.IV)
		} else {
			out = modes.CBCEncrypt(blocks, material.Key, material.IV)
		}
	case "ctr":
		if *flagDecrypt {
			out = modes.CTRDecrypt(blocks, material.Key, material.Nonce)
		} else {
			out = modes.CTREncrypt(blocks, material.Key, material.Nonce)
		}
	default:
		return fmt.Errorf("unknown mode %q: want ecb, cbc or ctr", *flagMode)
	}

	fmt.Fprintln(stdout, bintext.FormatBlocks(out))
	return nil
}

// gatherMaterial assembles the key, IV and nonce either from a
// passphrase or from the explicit binary-string flags. The IV is only
// required for cbc and the nonce only for ctr.
func gatherMaterial() (keymat.Material, error) {
	if *flagPassphrase != "" {
		if *flagKey != "" || *flagIV != "" || *flagNonce != "" {
			return keymat.Material{}, fmt.Errorf("-passphrase cannot be combined with -key, -iv or -nonce")
		}
		return keymat.FromPassphrase(*flagPassphrase)
	}

	var m keymat.Material
	if *flagKey == "" {
		return m, fmt.Errorf("missing -key (or -passphrase)")
	}
	key, err := bintext.ParseBlock(*flagKey)
	if err != nil {
		return m, fmt.Errorf("bad -key: %v", err)
	}
	m.Key = key

	switch *flagMode {
	case "cbc":
		if *flagIV == "" {
			return m, fmt.Errorf("mode cbc requires -iv")
		}
		iv, err := bintext.ParseBlock(*flagIV)
		if err != nil {
			return m, fmt.Errorf("bad -iv: %v", err)
		}
		m.IV = iv
	case "ctr":
		if *flagNonce == "" {
			return m, fmt.Errorf("mode ctr requires -nonce")
		}
		nonce, err := bintext.ParseBlock(*flagNonce)
		if err != nil {
			return m, fmt.Errorf("bad -nonce: %v", err)
		}
		m.Nonce = nonce
	}
	return m, nil
}
