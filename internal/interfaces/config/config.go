// Package config
package config

import (
	"fmt"

	"github.com/sky-brothers/skyair/internal/interfaces/global"
	"github.com/sky-brothers/skyair/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string         `json:"config_version"`
	General       *GeneralConfig `json:"general"`
	Store         *StoreConfig   `json:"store"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: global.ConfigVersion,
		General:       defaultGeneralConfig(),
		Store:         defaultStoreConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if c.ConfigVersion != global.ConfigVersion {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", global.ConfigVersion, c.ConfigVersion))
	}
	if result := c.General.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Store.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
