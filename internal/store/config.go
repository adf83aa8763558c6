package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Account string `yaml:"account"`
	API     struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Output struct {
		Dir          string `yaml:"dir"`
		SummaryFile  string `yaml:"summary_file"`
		DetailFile   string `yaml:"detail_file"`
		TiersFile    string `yaml:"tiers_file"`
		PositionFile string `yaml:"position_file"`
		BalanceFile  string `yaml:"balance_file"`
	} `yaml:"output"`
	Archive struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"archive"`
}

const (
	defaultAccount = "0xecb63caa47c7c4e77f60f1ce858cf28dc2b82b00"
	defaultBaseURL = "https://api.hyperliquid.xyz/info"
)

func (c *Config) Validate() error {
	if c.Account == "" {
		return errors.New("account cannot be empty")
	}
	if !strings.HasPrefix(c.Account, "0x") {
		return fmt.Errorf("invalid account '%s': must be a 0x-prefixed address", c.Account)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	return nil
}

// LoadConfig reads config.yaml from path. A missing file is not an error:
// every binary must run with no flags and no local setup, so defaults apply.
func LoadConfig(path string) (*Config, error) {
	var c Config

	b, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if c.Account == "" {
		c.Account = defaultAccount
	}
	if v := os.Getenv("QUOTEWATCH_ACCOUNT"); v != "" {
		c.Account = v
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 30
	}
	if c.Output.Dir == "" {
		c.Output.Dir = "data"
	}
	if c.Output.SummaryFile == "" {
		c.Output.SummaryFile = "quoting_strategy_summary.csv"
	}
	if c.Output.DetailFile == "" {
		c.Output.DetailFile = "quoting_strategy_detailed.csv"
	}
	if c.Output.TiersFile == "" {
		c.Output.TiersFile = "quoting_strategy_tiers.csv"
	}
	if c.Output.PositionFile == "" {
		c.Output.PositionFile = "positions.csv"
	}
	if c.Output.BalanceFile == "" {
		c.Output.BalanceFile = "balances.csv"
	}
	if c.Archive.Path == "" {
		c.Archive.Path = "data/quotewatch.db"
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
