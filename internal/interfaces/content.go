// Package interfaces
package interfaces

import (
	"github.com/sky-brothers/skyair/internal/interfaces/log"
	"github.com/sky-brothers/skyair/internal/interfaces/operation"
)

type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.StoreOperations
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	operations *operation.StoreOperations,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    operations}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface {
	return app.configManager
}

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.StoreOperations { return app.operations }
