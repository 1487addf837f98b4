package ergo

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"golang.org/x/crypto/blake2b"
)

const (
	p2pkAddressType byte = 0x01
	p2sAddressType  byte = 0x03

	checksumLength = 4
)

// p2pkTreeHeader is the ErgoTree prefix of a ProveDlog(pk) script followed by a 33-byte key.
var p2pkTreeHeader = []byte{0x00, 0x08, 0xcd}

const p2pkTreeLength = 36

// AddressEncoder turns ErgoTrees into user-facing base58 addresses.
type AddressEncoder struct {
	networkPrefix byte
}

// NewAddressEncoder builds an encoder for the network.
func NewAddressEncoder(network model.Network) (*AddressEncoder, error) {
	prefix, ok := network.AddressPrefix()
	if !ok {
		return nil, fmt.Errorf("unsupported network %q", network)
	}
	return &AddressEncoder{networkPrefix: prefix}, nil
}

// Encode returns the P2PK address for a public key tree and the P2S address for any other tree.
func (e *AddressEncoder) Encode(ergoTree string) (string, error) {
	tree, err := hex.DecodeString(ergoTree)
	if err != nil {
		return "", fmt.Errorf("decode ergo tree: %w", err)
	}
	if len(tree) == 0 {
		return "", errors.New("empty ergo tree")
	}

	addressType, content := p2sAddressType, tree
	if isP2PK(tree) {
		addressType, content = p2pkAddressType, tree[len(p2pkTreeHeader):]
	}

	buf := make([]byte, 0, 1+len(content)+checksumLength)
	buf = append(buf, e.networkPrefix+addressType)
	buf = append(buf, content...)
	sum := blake2b.Sum256(buf)
	buf = append(buf, sum[:checksumLength]...)

	return base58.Encode(buf), nil
}

func isP2PK(tree []byte) bool {
	return len(tree) == p2pkTreeLength && bytes.HasPrefix(tree, p2pkTreeHeader)
}
