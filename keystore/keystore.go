// Package keystore implements the wallet core's key-store component:
// password-based encryption of an account's keys file and atomic
// save/load to disk. It is grounded on modules/wallet/encrypt.go's
// uidEncryptionKey/checkMasterKey pattern: derive a symmetric key and
// confirm a password by decrypting the keys and re-deriving the spend
// public key from the decrypted spend secret, rather than storing the
// password itself, generalized from a TwofishKey/UID scheme
// to a password+salt ChaCha8 scheme.
package keystore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/NebulousLabs/fastrand"
	"github.com/cnwallet/walletcore/account"
	"github.com/cnwallet/walletcore/crypto"
	"github.com/cnwallet/walletcore/persist"
	"github.com/cnwallet/walletcore/walleterrors"
	"github.com/otiai10/copy"
)

// saltSize is the scrypt salt width; the password is verified by
// re-deriving the spend public key from the decrypted secret rather than
// by a separate stored verification blob.
const (
	saltSize  = 16
	fileMagic = "CNWALLET-KEYS\x00"
)

// Save password-encrypts acc and atomically writes it to path. A prior
// file at path, if any, is preserved as path+".bak" before being replaced
//.
func Save(path string, acc account.Account, password []byte) error {
	salt := make([]byte, saltSize)
	fastrand.Read(salt)

	key, err := crypto.DeriveChacha8Key(password, salt)
	if err != nil {
		return walleterrors.Wrap(walleterrors.KeysSerializeError, "keystore.Save", err)
	}

	plaintext := encodeAccount(acc)
	var iv crypto.Chacha8IV
	fastrand.Read(iv[:])

	ciphertext, err := key.EncryptBytes(iv, plaintext)
	if err != nil {
		return walleterrors.Wrap(walleterrors.KeysSerializeError, "keystore.Save", err)
	}

	blob := encodeEnvelope(salt, iv, ciphertext)

	if _, err := os.Stat(path); err == nil {
		if err := copy.Copy(path, path+".bak"); err != nil {
			return walleterrors.Wrap(walleterrors.FileSaveError, "keystore.Save", err)
		}
	}

	if err := persist.AtomicWriteFile(path, blob); err != nil {
		return walleterrors.Wrap(walleterrors.FileSaveError, "keystore.Save", err)
	}
	return nil
}

// Load decrypts and deserializes the account at path using password. A
// wrong password and a corrupted file are both reported as
// InvalidPassword: Open Questions collapses them into one kind
// since they are indistinguishable to a user and to a side-channel
// observer.
func Load(path string, password []byte) (account.Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return account.Account{}, walleterrors.Wrap(walleterrors.FileNotFound, "keystore.Load", err)
		}
		return account.Account{}, walleterrors.Wrap(walleterrors.FileReadError, "keystore.Load", err)
	}

	salt, iv, ciphertext, err := decodeEnvelope(raw)
	if err != nil {
		return account.Account{}, walleterrors.New(walleterrors.InvalidPassword, "keystore.Load", "malformed keys file")
	}

	key, err := crypto.DeriveChacha8Key(password, salt)
	if err != nil {
		return account.Account{}, walleterrors.New(walleterrors.InvalidPassword, "keystore.Load", "key derivation failed")
	}

	plaintext, err := key.DecryptBytes(iv, ciphertext)
	if err != nil {
		return account.Account{}, walleterrors.New(walleterrors.InvalidPassword, "keystore.Load", "decryption failed")
	}

	acc, err := decodeAccount(plaintext)
	if err != nil {
		return account.Account{}, walleterrors.New(walleterrors.InvalidPassword, "keystore.Load", "malformed plaintext")
	}

	// Verify the password is correct for these specific keys, not merely
	// well-formed: re-derive the spend public key from the decrypted
	// secret and require it to match what was stored.
	if crypto.PublicFromSecret(acc.Keys.SpendSecret) != acc.Keys.SpendPublic {
		return account.Account{}, walleterrors.New(walleterrors.InvalidPassword, "keystore.Load", "key consistency check failed")
	}

	return acc, nil
}

func encodeEnvelope(salt []byte, iv crypto.Chacha8IV, ciphertext []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(fileMagic)
	buf.Write(salt)
	buf.Write(iv[:])
	var length [4]byte
	binary.LittleEndian.PutUint32(length[:], uint32(len(ciphertext)))
	buf.Write(length[:])
	buf.Write(ciphertext)
	return buf.Bytes()
}

func decodeEnvelope(raw []byte) (salt []byte, iv crypto.Chacha8IV, ciphertext []byte, err error) {
	want := len(fileMagic) + saltSize + 8 + 4
	if len(raw) < want {
		return nil, iv, nil, fmt.Errorf("keystore: envelope too short")
	}
	if string(raw[:len(fileMagic)]) != fileMagic {
		return nil, iv, nil, fmt.Errorf("keystore: bad magic")
	}
	i := len(fileMagic)
	salt = raw[i : i+saltSize]
	i += saltSize
	copy(iv[:], raw[i:i+8])
	i += 8
	length := binary.LittleEndian.Uint32(raw[i : i+4])
	i += 4
	if i+int(length) != len(raw) {
		return nil, iv, nil, fmt.Errorf("keystore: length mismatch")
	}
	ciphertext = raw[i : i+int(length)]
	return salt, iv, ciphertext, nil
}

func encodeAccount(acc account.Account) []byte {
	var buf bytes.Buffer
	buf.Write(acc.Keys.SpendPublic[:])
	buf.Write(acc.Keys.SpendSecret[:])
	buf.Write(acc.Keys.ViewPublic[:])
	buf.Write(acc.Keys.ViewSecret[:])
	var ts [8]byte
	binary.LittleEndian.PutUint64(ts[:], uint64(acc.CreationTimestamp))
	buf.Write(ts[:])
	return buf.Bytes()
}

func decodeAccount(b []byte) (account.Account, error) {
	want := 4*crypto.PublicKeySize + 8
	if len(b) != want {
		return account.Account{}, io.ErrUnexpectedEOF
	}
	var acc account.Account
	i := 0
	copy(acc.Keys.SpendPublic[:], b[i:i+crypto.PublicKeySize])
	i += crypto.PublicKeySize
	copy(acc.Keys.SpendSecret[:], b[i:i+crypto.SecretKeySize])
	i += crypto.SecretKeySize
	copy(acc.Keys.ViewPublic[:], b[i:i+crypto.PublicKeySize])
	i += crypto.PublicKeySize
	copy(acc.Keys.ViewSecret[:], b[i:i+crypto.SecretKeySize])
	i += crypto.SecretKeySize
	acc.CreationTimestamp = int64(binary.LittleEndian.Uint64(b[i : i+8]))
	return acc, nil
}
