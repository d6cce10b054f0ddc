// Package cli owns all interactive input and output: menu dispatch,
// credential prompting, table rendering and ticket receipts. The reservation
// core is reached only through the operation interfaces.
package cli

import (
	"bufio"
	"os"

	"github.com/fatih/color"
	"github.com/sky-brothers/skyair/internal/interfaces"
)

type CLI struct {
	app    *interfaces.ApplicationContent
	reader *bufio.Reader
	eof    bool
	banner *color.Color
	notice *color.Color
	alert  *color.Color
}

func NewCLI(app *interfaces.ApplicationContent) *CLI {
	return &CLI{
		app:    app,
		reader: bufio.NewReader(os.Stdin),
		banner: color.New(color.FgCyan, color.Bold),
		notice: color.New(color.FgGreen),
		alert:  color.New(color.FgRed),
	}
}

// StartCLI runs the interactive session until the operator exits.
func StartCLI(app *interfaces.ApplicationContent) {
	cli := NewCLI(app)
	cli.Run()
}

func (cli *CLI) Run() {
	config := cli.app.ConfigManager().Config().General
	cli.banner.Println("\n===========================================================")
	cli.banner.Printf("            WELCOME TO %s SYSTEM\n", config.AirlineName)
	cli.banner.Println("===========================================================")

	for {
		choice := cli.readInt("\nMenu:\n1. Admin\n2. User\n0. Exit\nEnter your choice: ", -1)
		if cli.eof {
			return
		}
		switch choice {
		case 0:
			cli.notice.Printf("\nThank you for using %s RESERVATION SYSTEM!\n", config.AirlineName)
			return
		case 1:
			cli.adminLogin()
		case 2:
			cli.userEntry()
		default:
			cli.alert.Println("Invalid choice")
		}
	}
}
