package db

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"whit-sponsors/internal/config/configs"
)

// OpenBolt opens the bolt file named by cfg. Opening fails after the ping
// timeout when another process holds the file lock.
func OpenBolt(cfg configs.Store) (*bolt.DB, error) {
	db, err := bolt.Open(cfg.BoltPath, 0600, &bolt.Options{Timeout: pingTimeout})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", cfg.BoltPath, err)
	}
	return db, nil
}
