// Package interfaces
package interfaces

import (
	"github.com/sky-brothers/skyair/internal/interfaces/global"
)

type CleanerInterface interface {
	Init()
	Add(callable global.Callable)
	Clean()
}
