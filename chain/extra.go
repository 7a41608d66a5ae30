package chain

import (
	"encoding/binary"
	"errors"

	"github.com/cnwallet/walletcore/crypto"
)

// extra field tag bytes, following the CryptoNote tx_extra tagged-TLV
// layout (original_source/src/cryptonote_core/cryptonote_format_utils.h).
const (
	extraTagPubKey      = 0x01
	extraTagNonce       = 0x02
	extraNoncePaymentID = 0x00
)

// PaymentIDSize is the width of a short (non-encrypted) payment id.
const PaymentIDSize = 32

var (
	// ErrMissingPubKey is returned when a transaction's extra field carries
	// no per-tx public key.
	ErrMissingPubKey = errors.New("chain: extra field carries no tx public key")
	// ErrTruncatedExtra is returned when a tagged field's declared length
	// runs past the end of the extra buffer.
	ErrTruncatedExtra = errors.New("chain: extra field is truncated")
)

// ExtractPubKey extracts the transaction's per-tx public key R from its
// extra field. The first well-formed tx-pubkey tag wins; a transaction
// carrying more than one is non-standard but not itself an error here —
// callers that care about that case inspect extra directly.
func ExtractPubKey(extra []byte) (crypto.PublicKey, error) {
	var zero crypto.PublicKey
	i := 0
	for i < len(extra) {
		tag := extra[i]
		i++
		switch tag {
		case extraTagPubKey:
			if i+crypto.PublicKeySize > len(extra) {
				return zero, ErrTruncatedExtra
			}
			var pk crypto.PublicKey
			copy(pk[:], extra[i:i+crypto.PublicKeySize])
			return pk, nil
		case extraTagNonce:
			n, adv, err := skipNonce(extra[i:])
			if err != nil {
				return zero, err
			}
			_ = n
			i += adv
		default:
			// Unknown tag: extra is a free-form append-only field, so
			// skip one byte and keep scanning rather than treating it
			// as fatal.
		}
	}
	return zero, ErrMissingPubKey
}

// ExtractPaymentID extracts the short payment id carried in extra's nonce
// field, if any. ok is false when no payment id is present.
func ExtractPaymentID(extra []byte) (id [PaymentIDSize]byte, ok bool) {
	i := 0
	for i < len(extra) {
		tag := extra[i]
		i++
		switch tag {
		case extraTagPubKey:
			if i+crypto.PublicKeySize > len(extra) {
				return id, false
			}
			i += crypto.PublicKeySize
		case extraTagNonce:
			nonce, adv, err := readNonceBytes(extra[i:])
			if err != nil {
				return id, false
			}
			i += adv
			if len(nonce) == 1+PaymentIDSize && nonce[0] == extraNoncePaymentID {
				copy(id[:], nonce[1:])
				return id, true
			}
		default:
			// unknown tag, nothing to skip reliably; stop scanning.
			return id, false
		}
	}
	return id, false
}

// BuildExtra assembles a minimal extra field carrying a tx public key and,
// optionally, a short payment id nonce — the inverse of ExtractPubKey and
// ExtractPaymentID, used by the transaction builder.
func BuildExtra(pubKey crypto.PublicKey, paymentID *[PaymentIDSize]byte) []byte {
	out := make([]byte, 0, 1+crypto.PublicKeySize+2+1+PaymentIDSize)
	out = append(out, extraTagPubKey)
	out = append(out, pubKey[:]...)
	if paymentID != nil {
		nonce := make([]byte, 0, 1+PaymentIDSize)
		nonce = append(nonce, extraNoncePaymentID)
		nonce = append(nonce, paymentID[:]...)
		out = append(out, extraTagNonce)
		out = appendVarint(out, uint64(len(nonce)))
		out = append(out, nonce...)
	}
	return out
}

func skipNonce(b []byte) (n int, advanced int, err error) {
	nonce, adv, err := readNonceBytes(b)
	return len(nonce), adv, err
}

func readNonceBytes(b []byte) (nonce []byte, advanced int, err error) {
	size, n := binary.Uvarint(b)
	if n <= 0 {
		return nil, 0, ErrTruncatedExtra
	}
	if n+int(size) > len(b) {
		return nil, 0, ErrTruncatedExtra
	}
	return b[n : n+int(size)], n + int(size), nil
}

func appendVarint(dst []byte, v uint64) []byte {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	return append(dst, tmp[:n]...)
}
