package persist

import (
	"encoding/json"
	"fmt"
)

// Metadata tags a JSON-persisted file with a human-readable header and a
// version string (the same convention modules/blockcreator/persist.go's
// settingsMetadata and modules/wallet's seedMetadata use) so a future
// version of the format can detect and refuse (or migrate) files written
// by an incompatible one.
type Metadata struct {
	Header  string
	Version string
}

type envelope struct {
	Header  string          `json:"header"`
	Version string          `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// ErrBadHeader is returned when a file's header does not match the
// metadata the caller expected.
var ErrBadHeader = fmt.Errorf("persist: mismatched file header")

// ErrBadVersion is returned when a file's version does not match the
// metadata the caller expected. Callers that need to read older versions
// do so by trying each known Metadata in turn, oldest-compatible-first.
var ErrBadVersion = fmt.Errorf("persist: mismatched file version")

// SaveJSON atomically writes object to filename, tagged with meta.
func SaveJSON(meta Metadata, object interface{}, filename string) error {
	data, err := json.MarshalIndent(object, "", "\t")
	if err != nil {
		return err
	}
	env := envelope{Header: meta.Header, Version: meta.Version, Data: data}
	blob, err := json.MarshalIndent(env, "", "\t")
	if err != nil {
		return err
	}
	return AtomicWriteFile(filename, blob)
}

// LoadJSON reads filename into object, requiring its header and version to
// match meta exactly.
func LoadJSON(meta Metadata, object interface{}, filename string) error {
	raw, err := ReadFile(filename)
	if err != nil {
		return err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}
	if env.Header != meta.Header {
		return ErrBadHeader
	}
	if env.Version != meta.Version {
		return ErrBadVersion
	}
	return json.Unmarshal(env.Data, object)
}
