package account

import (
	"errors"

	"github.com/btcsuite/btcutil/base58"
	"github.com/cnwallet/walletcore/crypto"
)

// checksumSize is the number of bytes of the truncated Keccak checksum
// appended before Base58 encoding.
const checksumSize = 4

// ErrInvalidAddress is returned when a string fails to decode to a valid
// address: wrong length, bad checksum, or invalid Base58 alphabet.
var ErrInvalidAddress = errors.New("account: invalid address")

// Address is the public pair (spend_public, view_public) rendered for
// sharing with senders rendered as a Base58 string with a network
// byte and a checksum").
type Address struct {
	Network     byte
	SpendPublic crypto.PublicKey
	ViewPublic  crypto.PublicKey
}

// NewAddress builds the address of an account under the given network byte.
func NewAddress(network byte, spendPublic, viewPublic crypto.PublicKey) Address {
	return Address{Network: network, SpendPublic: spendPublic, ViewPublic: viewPublic}
}

// Address returns this account's public address under the given network byte.
func (a Account) Address(network byte) Address {
	return NewAddress(network, a.Keys.SpendPublic, a.Keys.ViewPublic)
}

// String renders the address as Base58Check-style text.
func (a Address) String() string {
	raw := a.rawBytes()
	checksum := crypto.HashBytes(raw)
	full := append(raw, checksum[:checksumSize]...)
	return base58.Encode(full)
}

func (a Address) rawBytes() []byte {
	raw := make([]byte, 0, 1+2*crypto.PublicKeySize)
	raw = append(raw, a.Network)
	raw = append(raw, a.SpendPublic[:]...)
	raw = append(raw, a.ViewPublic[:]...)
	return raw
}

// ParseAddress decodes and checksum-verifies a Base58-rendered address
// (testable property 8: Base58(decode(encode(address))) == address).
func ParseAddress(s string) (Address, error) {
	full := base58.Decode(s)
	want := 1 + 2*crypto.PublicKeySize + checksumSize
	if len(full) != want {
		return Address{}, ErrInvalidAddress
	}
	raw := full[:len(full)-checksumSize]
	gotChecksum := full[len(full)-checksumSize:]
	expected := crypto.HashBytes(raw)
	for i := 0; i < checksumSize; i++ {
		if gotChecksum[i] != expected[i] {
			return Address{}, ErrInvalidAddress
		}
	}

	var addr Address
	addr.Network = raw[0]
	copy(addr.SpendPublic[:], raw[1:1+crypto.PublicKeySize])
	copy(addr.ViewPublic[:], raw[1+crypto.PublicKeySize:])
	return addr, nil
}
