package configs

import "fmt"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverBolt     = "bolt"
)

// Store selects where campaigns, counters and the delivery log live.
// The bolt driver keeps everything in a single local file.
type Store struct {
	Driver   string `env:"DRIVER" envDefault:"postgres"`
	BoltPath string `env:"BOLT_PATH" envDefault:"sponsors.db"`
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverBolt:
		return nil
	}
	return fmt.Errorf("unknown store driver %q", c.Driver)
}
