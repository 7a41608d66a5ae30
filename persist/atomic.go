// Package persist implements the wallet core's persistence layer: atomic
// file writes, JSON metadata envelopes for small settings-like files, a
// version-gated binary codec for the wallet snapshot, and a banner-style
// logger. It is grounded on modules/wallet/seed.go's
// persist.SaveJSON/LoadJSON calls and persist/log_test.go's
// STARTUP/SHUTDOWN-banner file logger, generalized from JSON-only
// settings files to a versioned binary snapshot format.
package persist

import (
	"os"
	"path/filepath"
)

// ReadFile reads the file at path, the read half of AtomicWriteFile.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// AtomicWriteFile writes data to path by writing a temp file in the same
// directory, fsyncing it, then renaming it over path — so a crash mid-write
// never leaves a half-written file in place of a good one.
func AtomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
