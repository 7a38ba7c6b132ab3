package configs

import "time"

// Redis configures the fixed-window beacon rate limiter. An empty Address
// disables rate limiting.
type Redis struct {
	// Address is a redis:// URL.
	Address string `env:"ADDRESS"`
	// BeaconLimit is the number of beacons one client may send per window.
	BeaconLimit int64 `env:"BEACON_LIMIT" envDefault:"120"`
	// BeaconWindow is the length of the rate limit window.
	BeaconWindow time.Duration `env:"BEACON_WINDOW" envDefault:"1m"`
}

// Enabled reports whether a Redis address was configured.
func (c Redis) Enabled() bool {
	return c.Address != ""
}
