package drivelog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadLedger reads the ledger document at path.
//
// Persistence problems are never fatal: an absent file yields a fresh empty
// ledger with a nil error, and an unreadable or corrupt file yields a fresh
// empty ledger together with the error, so the caller can warn and carry on.
func LoadLedger(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return NewLedger(), fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	l, err := DecodeLedger(f)
	if err != nil {
		return NewLedger(), fmt.Errorf("could not read ledger file %q: %w", path, err)
	}
	return l, nil
}

// SaveLedger persists the whole ledger to path. The document is written to a
// temporary file first and renamed into place, so a failed write never
// truncates the previous state.
func SaveLedger(path string, l *Ledger) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary ledger file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace ledger file %q: %w", path, err)
	}
	return nil
}
