// Package walleterrors implements the wallet core's error taxonomy: a
// closed set of error kinds, each carrying a free-form detail and an
// optional wrapped cause, replacing the C++ original's
// wallet_errors.h exception hierarchy
// (original_source/src/wallet/wallet_errors.h) with a single idiomatic Go
// error type callers can switch on via Kind() or match with errors.Is.
package walleterrors

import "fmt"

// Kind is one discriminant of the closed error taxonomy.
type Kind int

const (
	// Filesystem errors.
	FileExists Kind = iota
	FileNotFound
	FileReadError
	FileSaveError
	MismatchedFiles

	// Crypto/keyfile errors. The wrong-password case and a corrupted- or
	// truncated-keys-file failure are intentionally collapsed into the
	// single InvalidPassword kind, since they are indistinguishable to a
	// user and to a side-channel observer.
	InvalidPassword
	KeysSerializeError
	KeysDeserializeError

	// Parsing errors.
	BlockParseError
	TxParseError

	// Node RPC errors.
	NoConnectionToDaemon
	DaemonBusy
	DaemonError
	GetBlocksError
	GetRandomOutsError
	TxRejected

	// Transaction construction errors.
	ZeroDestination
	TxSumOverflow
	NotEnoughMoney
	NotEnoughOutsToMix
	TxNotConstructed
	TxTooBig
	UnexpectedTxinType

	// Invariant errors: never retried.
	InternalError
)

var kindNames = map[Kind]string{
	FileExists:            "FileExists",
	FileNotFound:          "FileNotFound",
	FileReadError:         "FileReadError",
	FileSaveError:         "FileSaveError",
	MismatchedFiles:       "MismatchedFiles",
	InvalidPassword:       "InvalidPassword",
	KeysSerializeError:    "KeysSerializeError",
	KeysDeserializeError:  "KeysDeserializeError",
	BlockParseError:       "BlockParseError",
	TxParseError:          "TxParseError",
	NoConnectionToDaemon:  "NoConnectionToDaemon",
	DaemonBusy:            "DaemonBusy",
	DaemonError:           "DaemonError",
	GetBlocksError:        "GetBlocksError",
	GetRandomOutsError:    "GetRandomOutsError",
	TxRejected:            "TxRejected",
	ZeroDestination:       "ZeroDestination",
	TxSumOverflow:         "TxSumOverflow",
	NotEnoughMoney:        "NotEnoughMoney",
	NotEnoughOutsToMix:    "NotEnoughOutsToMix",
	TxNotConstructed:      "TxNotConstructed",
	TxTooBig:              "TxTooBig",
	UnexpectedTxinType:    "UnexpectedTxinType",
	InternalError:         "InternalError",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownErrorKind"
}

// Error is the wallet core's single error type: a Kind, a free-form
// detail, a source tag (the C++ original's file/line, here a short
// "package.function" tag), and an optional wrapped cause.
type Error struct {
	Kind   Kind
	Tag    string
	Detail string
	Cause  error
}

// New creates an Error of the given kind with a source tag and detail.
func New(kind Kind, tag, detail string) *Error {
	return &Error{Kind: kind, Tag: tag, Detail: detail}
}

// Wrap creates an Error of the given kind that wraps an underlying cause
// (e.g. an *os.PathError from a failed file read).
func Wrap(kind Kind, tag string, cause error) *Error {
	return &Error{Kind: kind, Tag: tag, Cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Kind, e.Tag, e.Cause)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Kind, e.Tag, e.Detail)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, walleterrors.New(walleterrors.NotEnoughMoney, "", "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Of reports the Kind of err if it is (or wraps) a *Error, and ok=false
// otherwise.
func Of(err error) (Kind, bool) {
	var e *Error
	for err != nil {
		if we, ok := err.(*Error); ok {
			e = we
			break
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = unwrapper.Unwrap()
	}
	if e == nil {
		return 0, false
	}
	return e.Kind, true
}
