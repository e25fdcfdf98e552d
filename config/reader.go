package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/common"
	"github.com/pelletier/go-toml"
)

type Custom struct {
	Number struct {
		Scale    int32               `toml:"scale"`
		MaxScale int32               `toml:"max-scale"`
		Rounding common.RoundingMode `toml:"-"`
		Mode     string              `toml:"rounding"`
	} `toml:"number"`
	Range struct {
		MaxSize int `toml:"max-size"`
	} `toml:"range"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
	Storage struct {
		ValueLogGC bool `toml:"value-log-gc"`
		CacheSize  int  `toml:"cache-size"`
	} `toml:"storage"`
	RPC struct {
		Port int `toml:"port"`
	} `toml:"rpc"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var config Custom
	err = toml.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	err = config.fill()
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// Default returns the configuration used when no file is given.
func Default() *Custom {
	var config Custom
	err := config.fill()
	if err != nil {
		panic(err)
	}
	return &config
}

func (c *Custom) fill() error {
	if c.Number.Scale == 0 {
		c.Number.Scale = DefaultScale
	}
	if c.Number.Scale < 0 {
		return fmt.Errorf("invalid number scale %d", c.Number.Scale)
	}
	if c.Number.MaxScale <= 0 {
		c.Number.MaxScale = DefaultMaxScale
	}
	if c.Number.Scale > c.Number.MaxScale {
		return fmt.Errorf("number scale %d exceeds max scale %d", c.Number.Scale, c.Number.MaxScale)
	}
	if c.Number.Mode == "" {
		c.Number.Mode = DefaultRounding
	}
	mode, err := common.ParseRoundingMode(c.Number.Mode)
	if err != nil {
		return err
	}
	c.Number.Rounding = mode
	if c.Range.MaxSize <= 0 {
		c.Range.MaxSize = DefaultRangeMaxSize
	}
	if c.Log.Level == 0 {
		c.Log.Level = DefaultLogLevel
	}
	if c.Storage.CacheSize == 0 {
		c.Storage.CacheSize = DefaultCacheSize
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	return nil
}
