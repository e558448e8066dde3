package backup

import (
	"context"
	"fmt"
)

// Snapshotter is the state a backup file is taken from and restored into.
type Snapshotter interface {
	Snapshot() ([]byte, error)
	Restore(ctx context.Context, data []byte) error
}

// SaveTo seals the current snapshot into path.
func SaveTo(s Snapshotter, path, passphrase string) error {
	data, err := s.Snapshot()
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return WriteFile(path, data, passphrase)
}

// LoadFrom opens path and restores it. Nothing is restored when the file
// cannot be decrypted or does not hold a valid snapshot.
func LoadFrom(ctx context.Context, s Snapshotter, path, passphrase string) error {
	data, err := ReadFile(path, passphrase)
	if err != nil {
		return err
	}
	if err := s.Restore(ctx, data); err != nil {
		return fmt.Errorf("restore snapshot: %w", err)
	}
	return nil
}
