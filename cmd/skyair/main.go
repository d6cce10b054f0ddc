package main

import (
	"flag"
	"fmt"

	"github.com/sky-brothers/skyair/internal/base"
	"github.com/sky-brothers/skyair/internal/cli"
	"github.com/sky-brothers/skyair/internal/interfaces"
	"github.com/sky-brothers/skyair/internal/interfaces/global"
	"github.com/sky-brothers/skyair/internal/store"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	operations, err := store.OpenStores(logger, config)
	if err != nil {
		logger.FatalF("Error occurred while opening record stores, details: %v", err)
		return
	}

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, operations)

	cli.StartCLI(applicationContent)
}
