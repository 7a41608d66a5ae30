package build

import (
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ProtocolVersion is the wallet-core wire/feature version. It wraps
// Masterminds/semver rather than hand-rolling version-string parsing, so
// comparisons follow normal semver precedence rules instead of a bespoke
// regex-based ordering.
type ProtocolVersion struct {
	v *semver.Version
}

// InvalidVersionError indicates a protocol version string could not be parsed.
type InvalidVersionError string

// Error implements the error interface for InvalidVersionError.
func (e InvalidVersionError) Error() string {
	if len(e) == 0 {
		return "invalid version: <nil>"
	}
	return "invalid version: " + string(e)
}

// Parse attempts to create a version based on a given string.
func Parse(raw string) (ProtocolVersion, error) {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return ProtocolVersion{}, InvalidVersionError(raw)
	}
	return ProtocolVersion{v: v}, nil
}

// MustParse creates a version based on a given string, panics in case the
// given string is invalid.
func MustParse(raw string) ProtocolVersion {
	version, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return version
}

// NewVersion creates a new protocol version.
func NewVersion(major, minor, patch uint64) ProtocolVersion {
	return ProtocolVersion{v: semver.New(major, minor, patch, "", "")}
}

// Compare returns an integer comparing this version with another version:
// -1 if pv < other, 0 if equal, 1 if pv > other.
func (pv ProtocolVersion) Compare(other ProtocolVersion) int {
	if pv.v == nil || other.v == nil {
		return 0
	}
	return pv.v.Compare(other.v)
}

// String returns the string version of this ProtocolVersion.
func (pv ProtocolVersion) String() string {
	if pv.v == nil {
		return "0.0.0"
	}
	return pv.v.String()
}

// MarshalJSON implements json.Marshaler.
func (pv ProtocolVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(pv.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (pv *ProtocolVersion) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return InvalidVersionError(string(b))
	}
	v, err := Parse(raw)
	if err != nil {
		return err
	}
	*pv = v
	return nil
}

var (
	// rawVersion is the current released wallet-core version.
	rawVersion = "1.0.0"
	// Version is the current version of the wallet core.
	Version = MustParse(rawVersion)
)

// GoString implements fmt.GoStringer for debugging/log output.
func (pv ProtocolVersion) GoString() string {
	return fmt.Sprintf("build.ProtocolVersion(%s)", pv.String())
}
