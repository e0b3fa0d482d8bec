package core

import "time"

// Config carries every ACL knob explicitly. Components receive it at
// construction; nothing reads ambient global state.
type Config struct {
	DefaultApplication string   `yaml:"defaultApplication"`
	PolicyShape        string   `yaml:"policyShape"` // "roles" (default) or "tiered"
	CacheTTLSeconds    int      `yaml:"cacheTTLSeconds"`
	RouteSetTTLSeconds int      `yaml:"routeSetTTLSeconds"`
	SubjectHeader      string   `yaml:"subjectHeader"`
	ApplicationHeader  string   `yaml:"applicationHeader"`
	BypassPrefixes     []string `yaml:"bypassPrefixes"`
	LogSamplingRate    float64  `yaml:"logSamplingRate"`

	LoginAttemptLimit  int `yaml:"loginAttemptLimit"`
	LoginBlockSeconds  int `yaml:"loginBlockSeconds"`
	RequestLimit       int `yaml:"requestLimit"`
	RequestWindowSecs  int `yaml:"requestWindowSeconds"`
}

// Normalize fills in the documented defaults for unset fields.
func (c Config) Normalize() Config {
	if c.PolicyShape == "" {
		c.PolicyShape = PolicyShapeRoles
	}
	if c.CacheTTLSeconds <= 0 {
		c.CacheTTLSeconds = 3600
	}
	if c.RouteSetTTLSeconds <= 0 {
		c.RouteSetTTLSeconds = c.CacheTTLSeconds
	}
	if c.SubjectHeader == "" {
		c.SubjectHeader = "x-user-id"
	}
	if c.ApplicationHeader == "" {
		c.ApplicationHeader = "x-acl-app"
	}
	if c.BypassPrefixes == nil {
		c.BypassPrefixes = []string{"/health", "/static", "/media", "/metrics"}
	}
	if c.LoginAttemptLimit <= 0 {
		c.LoginAttemptLimit = 5
	}
	if c.LoginBlockSeconds <= 0 {
		c.LoginBlockSeconds = 300
	}
	if c.RequestLimit <= 0 {
		c.RequestLimit = 180
	}
	if c.RequestWindowSecs <= 0 {
		c.RequestWindowSecs = 60
	}
	return c
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c Config) RouteSetTTL() time.Duration {
	return time.Duration(c.RouteSetTTLSeconds) * time.Second
}

func (c Config) LoginBlockWindow() time.Duration {
	return time.Duration(c.LoginBlockSeconds) * time.Second
}

func (c Config) RequestWindow() time.Duration {
	return time.Duration(c.RequestWindowSecs) * time.Second
}
