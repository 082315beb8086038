package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for a freshly deployed lab stack. The expected body text comes
// from the user-data template of the stack under test; its instance-type and
// AZ variables are empty there, hence the double space.
const (
	DefaultStackName    = "my-ec2-stack"
	DefaultExpectedBody = "Hello from  in "

	DefaultPollBudgetSeconds     = 300
	DefaultPollIntervalSeconds   = 5
	DefaultRequestTimeoutSeconds = 5
	DefaultDirectTimeoutSeconds  = 3
)

// Config represents the harness configuration. Timing values are explicit
// so they can be tuned per environment instead of living as literals.
type Config struct {
	StackName    string `yaml:"stack_name,omitempty"`
	ExpectedBody string `yaml:"expected_body,omitempty"`

	PollBudgetSeconds     int `yaml:"poll_budget_seconds,omitempty"`
	PollIntervalSeconds   int `yaml:"poll_interval_seconds,omitempty"`
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds,omitempty"`
	DirectTimeoutSeconds  int `yaml:"direct_timeout_seconds,omitempty"`

	AWSProfile string `yaml:"aws_profile,omitempty"`
	AWSRegion  string `yaml:"aws_region,omitempty"`
}

// Default returns a Config populated with the compiled defaults
func Default() *Config {
	return &Config{
		StackName:             DefaultStackName,
		ExpectedBody:          DefaultExpectedBody,
		PollBudgetSeconds:     DefaultPollBudgetSeconds,
		PollIntervalSeconds:   DefaultPollIntervalSeconds,
		RequestTimeoutSeconds: DefaultRequestTimeoutSeconds,
		DirectTimeoutSeconds:  DefaultDirectTimeoutSeconds,
	}
}

// GetConfigDir returns the config directory path (~/.stackcheck)
func GetConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stackcheck"
	}
	return filepath.Join(home, ".stackcheck")
}

// GetConfigPath returns the config file path (~/.stackcheck/config.yaml)
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// Load reads the configuration from ~/.stackcheck/config.yaml, merged over
// the defaults. A missing file yields the defaults.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads the configuration from an explicit path, merged over the
// defaults
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// PollBudget returns the overall readiness budget for the content check
func (c *Config) PollBudget() time.Duration {
	return time.Duration(c.PollBudgetSeconds) * time.Second
}

// PollInterval returns the sleep between readiness attempts
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout for readiness attempts
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DirectTimeout returns the per-request timeout for direct instance probes
func (c *Config) DirectTimeout() time.Duration {
	return time.Duration(c.DirectTimeoutSeconds) * time.Second
}
