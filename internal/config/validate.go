package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must not be negative (got %d)", c.Server.WriteRateLimit)
	}

	if c.DSN() == "" {
		if c.Dev.Local {
			return fmt.Errorf("database.local_dsn is required when dev.local is set")
		}
		return fmt.Errorf("database.url is required unless dev.local is set")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in %d..%d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Blip.NearbyLimit <= 0 {
		return fmt.Errorf("blip.nearby_limit must be > 0 (got %d)", c.Blip.NearbyLimit)
	}

	if err := c.Provider.validate(); err != nil {
		return fmt.Errorf("provider: %w", err)
	}

	// Song creation stores the song after the lookup, inside the same request.
	if rt := c.Server.RequestTimeout; rt > 0 && c.Provider.LookupBudget() >= rt {
		return fmt.Errorf("provider lookup budget %s (2*timeout + retry_delay) must be below server.request_timeout %s",
			c.Provider.LookupBudget(), rt)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (p *ProviderConfig) validate() error {
	if p.RatePerSecond <= 0 {
		return fmt.Errorf("rate_per_second must be > 0 (got %v)", p.RatePerSecond)
	}
	if p.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", p.Burst)
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", p.Timeout)
	}
	if p.RetryDelay < 0 {
		return fmt.Errorf("retry_delay must not be negative (got %s)", p.RetryDelay)
	}
	return nil
}

// YouTubeEnabled reports whether remote song lookups are configured.
func (p ProviderConfig) YouTubeEnabled() bool {
	return strings.TrimSpace(p.YouTubeAPIKey) != ""
}
