package quota

import "time"

type Config struct {
	Enabled   bool          `env:"QUOTA_ENABLED" envDefault:"false"`
	Limit     int           `env:"QUOTA_FREE_LIMIT" envDefault:"4"`
	Window    time.Duration `env:"QUOTA_WINDOW" envDefault:"720h"`
	SignupURL string        `env:"QUOTA_SIGNUP_URL" envDefault:"https://account.sandbox.aandra.it.com/"`
	Store     string        `env:"QUOTA_STORE" envDefault:"memory"` // memory or redis
	KeyPrefix string        `env:"QUOTA_KEY_PREFIX" envDefault:"namekit:quota:"`

	// TrustProxy keys clients on forwarding headers. Enable it only behind a
	// proxy that overwrites them.
	TrustProxy bool `env:"QUOTA_TRUST_PROXY" envDefault:"false"`
}
