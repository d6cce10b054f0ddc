// Package interfaces
package interfaces

import (
	. "github.com/sky-brothers/skyair/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
