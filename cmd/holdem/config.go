package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the game configuration loaded from an HCL file.
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Bots  []BotConfig   `hcl:"bot,block"`
}

// TableSettings configures the table stakes and capacity.
type TableSettings struct {
	SmallBlind int `hcl:"small_blind,optional"`
	BigBlind   int `hcl:"big_blind,optional"`
	BuyIn      int `hcl:"buy_in,optional"`
	Seats      int `hcl:"seats,optional"`
}

// BotConfig seats a scripted opponent.
type BotConfig struct {
	Name  string `hcl:"name,label"`
	BuyIn int    `hcl:"buy_in,optional"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			SmallBlind: 5,
			BigBlind:   10,
			BuyIn:      1000,
			Seats:      10,
		},
		Bots: []BotConfig{
			{Name: "river-rat", BuyIn: 1000},
			{Name: "calling-station", BuyIn: 1000},
		},
	}
}

// LoadConfig loads game configuration from an HCL file, falling back to
// defaults when the file does not exist.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultConfig()
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = defaults.Table.BigBlind
	}
	if config.Table.BuyIn == 0 {
		config.Table.BuyIn = defaults.Table.BuyIn
	}
	if config.Table.Seats == 0 {
		config.Table.Seats = defaults.Table.Seats
	}
	if len(config.Bots) == 0 {
		config.Bots = defaults.Bots
	}
	for i := range config.Bots {
		if config.Bots[i].BuyIn == 0 {
			config.Bots[i].BuyIn = config.Table.BuyIn
		}
	}

	return &config, nil
}

// Validate checks the configuration for playable stakes.
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("big blind must be greater than small blind")
	}
	if c.Table.BuyIn < c.Table.BigBlind*10 {
		return fmt.Errorf("buy-in must be at least ten big blinds")
	}
	if c.Table.Seats < 2 || c.Table.Seats > 10 {
		return fmt.Errorf("seats must be between 2 and 10")
	}
	if len(c.Bots) < 1 {
		return fmt.Errorf("at least one bot must be configured")
	}
	if len(c.Bots) >= c.Table.Seats {
		return fmt.Errorf("too many bots for %d seats", c.Table.Seats)
	}
	for _, bot := range c.Bots {
		if bot.BuyIn < c.Table.BuyIn {
			return fmt.Errorf("bot %s: buy-in below the table minimum %d", bot.Name, c.Table.BuyIn)
		}
	}
	return nil
}
