package configs

import "strings"

// Sweeper configures the cron job that completes expired campaigns.
// Setting Schedule to "off" disables it.
type Sweeper struct {
	Schedule string `env:"SCHEDULE" envDefault:"@every 5m"`
}

// Enabled reports whether the sweeper should be scheduled.
func (c Sweeper) Enabled() bool {
	s := strings.TrimSpace(c.Schedule)
	return s != "" && !strings.EqualFold(s, "off")
}
