package chain

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cnwallet/walletcore/crypto"
)

// Marshal serializes a Transaction deterministically for hashing and for
// ring-signature prefix computation. It is intentionally not the exact
// CryptoNote wire format (that belongs to the RPC transport layer // places out of scope) — only that encode(a) == encode(b) iff a and b are
// semantically identical, which is all Hash/PrefixHash need.
func Marshal(tx Transaction) []byte {
	var buf bytes.Buffer
	writeUvarint(&buf, tx.Version)
	writeUvarint(&buf, tx.UnlockTime)

	writeUvarint(&buf, uint64(len(tx.Ins)))
	for _, in := range tx.Ins {
		buf.WriteByte(byte(in.Type))
		switch in.Type {
		case TxInGen:
			writeUvarint(&buf, in.Height)
		case TxInToKey:
			writeUvarint(&buf, in.Amount)
			writeUvarint(&buf, uint64(len(in.KeyOffsets)))
			for _, off := range in.KeyOffsets {
				writeUvarint(&buf, off)
			}
			buf.Write(in.KeyImage[:])
			writeUvarint(&buf, uint64(len(in.RingSignature)))
			for _, entry := range in.RingSignature {
				buf.Write(entry.C[:])
				buf.Write(entry.R[:])
			}
		}
	}

	writeUvarint(&buf, uint64(len(tx.Outs)))
	for _, out := range tx.Outs {
		writeUvarint(&buf, out.Amount)
		buf.WriteByte(byte(out.TargetType))
		buf.Write(out.Key[:])
	}

	writeUvarint(&buf, uint64(len(tx.Extra)))
	buf.Write(tx.Extra)

	return buf.Bytes()
}

func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}

// Unmarshal is the inverse of Marshal, used by the wallet snapshot format
// to persist full transaction records rather than re-deriving
// them from the node on every load.
func Unmarshal(data []byte) (Transaction, error) {
	r := bytes.NewReader(data)
	var tx Transaction
	var err error

	if tx.Version, err = binary.ReadUvarint(r); err != nil {
		return tx, err
	}
	if tx.UnlockTime, err = binary.ReadUvarint(r); err != nil {
		return tx, err
	}

	numIns, err := binary.ReadUvarint(r)
	if err != nil {
		return tx, err
	}
	tx.Ins = make([]TxIn, numIns)
	for i := range tx.Ins {
		typeByte, err := r.ReadByte()
		if err != nil {
			return tx, err
		}
		in := TxIn{Type: TxInType(typeByte)}
		switch in.Type {
		case TxInGen:
			if in.Height, err = binary.ReadUvarint(r); err != nil {
				return tx, err
			}
		case TxInToKey:
			if in.Amount, err = binary.ReadUvarint(r); err != nil {
				return tx, err
			}
			numOffsets, err := binary.ReadUvarint(r)
			if err != nil {
				return tx, err
			}
			in.KeyOffsets = make([]uint64, numOffsets)
			for j := range in.KeyOffsets {
				if in.KeyOffsets[j], err = binary.ReadUvarint(r); err != nil {
					return tx, err
				}
			}
			if _, err := readFull(r, in.KeyImage[:]); err != nil {
				return tx, err
			}
			numSig, err := binary.ReadUvarint(r)
			if err != nil {
				return tx, err
			}
			in.RingSignature = make(crypto.RingSignature, numSig)
			for j := range in.RingSignature {
				if _, err := readFull(r, in.RingSignature[j].C[:]); err != nil {
					return tx, err
				}
				if _, err := readFull(r, in.RingSignature[j].R[:]); err != nil {
					return tx, err
				}
			}
		default:
			return tx, fmt.Errorf("chain: unknown txin type %d", typeByte)
		}
		tx.Ins[i] = in
	}

	numOuts, err := binary.ReadUvarint(r)
	if err != nil {
		return tx, err
	}
	tx.Outs = make([]TxOut, numOuts)
	for i := range tx.Outs {
		out := TxOut{}
		if out.Amount, err = binary.ReadUvarint(r); err != nil {
			return tx, err
		}
		targetByte, err := r.ReadByte()
		if err != nil {
			return tx, err
		}
		out.TargetType = TxOutTargetType(targetByte)
		if _, err := readFull(r, out.Key[:]); err != nil {
			return tx, err
		}
		tx.Outs[i] = out
	}

	extraLen, err := binary.ReadUvarint(r)
	if err != nil {
		return tx, err
	}
	tx.Extra = make([]byte, extraLen)
	if _, err := readFull(r, tx.Extra); err != nil {
		return tx, err
	}

	return tx, nil
}

func readFull(r *bytes.Reader, dst []byte) (int, error) {
	return io.ReadFull(r, dst)
}
