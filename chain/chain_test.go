package chain

import (
	"bytes"
	"testing"

	"github.com/cnwallet/walletcore/crypto"
)

func TestPrefixHashExcludesRingSignature(t *testing.T) {
	tx := Transaction{
		Version:    1,
		UnlockTime: 0,
		Ins: []TxIn{{
			Type:          TxInToKey,
			Amount:        100,
			KeyOffsets:    []uint64{1, 2, 3},
			RingSignature: crypto.RingSignature{{}},
		}},
		Outs: []TxOut{{Amount: 100, TargetType: TxOutToKey}},
	}

	prefix := tx.PrefixHash()

	tx.Ins[0].RingSignature = crypto.RingSignature{{}, {}, {}}
	prefix2 := tx.PrefixHash()

	if prefix != prefix2 {
		t.Fatalf("PrefixHash must not depend on ring signature contents")
	}

	if tx.Hash() == prefix {
		t.Fatalf("Hash and PrefixHash should differ when signatures are present")
	}
}

func TestIsMinerTransaction(t *testing.T) {
	gen := Transaction{Ins: []TxIn{{Type: TxInGen, Height: 5}}}
	if !gen.IsMinerTransaction() {
		t.Fatalf("expected a sole TxInGen input to be a miner transaction")
	}

	regular := Transaction{Ins: []TxIn{{Type: TxInToKey}}}
	if regular.IsMinerTransaction() {
		t.Fatalf("a TxInToKey input must not be classified as a miner transaction")
	}
}

func TestExtractPubKeyRoundTrip(t *testing.T) {
	var pk crypto.PublicKey
	copy(pk[:], bytes.Repeat([]byte{0x07}, crypto.PublicKeySize))

	extra := BuildExtra(pk, nil)

	got, err := ExtractPubKey(extra)
	if err != nil {
		t.Fatalf("ExtractPubKey: %v", err)
	}
	if got != pk {
		t.Fatalf("round trip mismatch: got %x want %x", got, pk)
	}

	if _, ok := ExtractPaymentID(extra); ok {
		t.Fatalf("expected no payment id when none was built in")
	}
}

func TestExtractPaymentIDRoundTrip(t *testing.T) {
	var pk crypto.PublicKey
	copy(pk[:], bytes.Repeat([]byte{0x09}, crypto.PublicKeySize))
	var pid [PaymentIDSize]byte
	copy(pid[:], bytes.Repeat([]byte{0xAB}, PaymentIDSize))

	extra := BuildExtra(pk, &pid)

	gotPK, err := ExtractPubKey(extra)
	if err != nil {
		t.Fatalf("ExtractPubKey: %v", err)
	}
	if gotPK != pk {
		t.Fatalf("pubkey mismatch: got %x want %x", gotPK, pk)
	}

	gotPID, ok := ExtractPaymentID(extra)
	if !ok {
		t.Fatalf("expected a payment id to be found")
	}
	if gotPID != pid {
		t.Fatalf("payment id mismatch: got %x want %x", gotPID, pid)
	}
}

func TestExtractPubKeyMissing(t *testing.T) {
	if _, err := ExtractPubKey(nil); err != ErrMissingPubKey {
		t.Fatalf("expected ErrMissingPubKey for empty extra, got %v", err)
	}
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	var ki crypto.KeyImage
	copy(ki[:], bytes.Repeat([]byte{0x11}, crypto.KeyImageSize))
	var key crypto.PublicKey
	copy(key[:], bytes.Repeat([]byte{0x22}, crypto.PublicKeySize))

	tx := Transaction{
		Version:    1,
		UnlockTime: 99,
		Ins: []TxIn{{
			Type:          TxInToKey,
			Amount:        500,
			KeyOffsets:    []uint64{3, 5, 8},
			KeyImage:      ki,
			RingSignature: crypto.RingSignature{{}, {}, {}},
		}},
		Outs: []TxOut{
			{Amount: 200, TargetType: TxOutToKey, Key: key},
			{Amount: 300, TargetType: TxOutToKey, Key: key},
		},
		Extra: []byte{0xde, 0xad, 0xbe, 0xef},
	}

	got, err := Unmarshal(Marshal(tx))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Version != tx.Version || got.UnlockTime != tx.UnlockTime {
		t.Fatalf("header mismatch: got %+v want %+v", got, tx)
	}
	if len(got.Ins) != 1 || got.Ins[0].Type != TxInToKey || got.Ins[0].Amount != 500 {
		t.Fatalf("input mismatch: got %+v", got.Ins)
	}
	if len(got.Ins[0].KeyOffsets) != 3 || got.Ins[0].KeyOffsets[2] != 8 {
		t.Fatalf("key offsets mismatch: got %+v", got.Ins[0].KeyOffsets)
	}
	if got.Ins[0].KeyImage != ki {
		t.Fatalf("key image mismatch: got %x want %x", got.Ins[0].KeyImage, ki)
	}
	if len(got.Ins[0].RingSignature) != 3 {
		t.Fatalf("expected 3 ring signature entries, got %d", len(got.Ins[0].RingSignature))
	}
	if len(got.Outs) != 2 || got.Outs[0].Amount != 200 || got.Outs[1].Key != key {
		t.Fatalf("outputs mismatch: got %+v", got.Outs)
	}
	if !bytes.Equal(got.Extra, tx.Extra) {
		t.Fatalf("extra mismatch: got %x want %x", got.Extra, tx.Extra)
	}
	if got.Hash() != tx.Hash() {
		t.Fatalf("expected round-tripped transaction to hash identically")
	}
}

func TestUnmarshalRejectsUnknownInputType(t *testing.T) {
	tx := Transaction{Ins: []TxIn{{Type: TxInType(0xff)}}}
	if _, err := Unmarshal(Marshal(tx)); err == nil {
		t.Fatal("expected an error unmarshaling an unknown txin type")
	}
}
