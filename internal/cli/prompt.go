package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/sky-brothers/skyair/internal/utils"
	"golang.org/x/term"
)

func (cli *CLI) readLine(label string) string {
	fmt.Print(label)
	line, err := cli.reader.ReadString('\n')
	if err != nil {
		cli.eof = true
	}
	return strings.TrimSpace(line)
}

func (cli *CLI) readInt(label string, defaultValue int) int {
	return utils.StrToInt(cli.readLine(label), defaultValue)
}

// readPassword reads a masked password when stdin is a terminal and falls
// back to a plain line otherwise, so the binary stays scriptable.
func (cli *CLI) readPassword(label string) string {
	fmt.Print(label)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		line, err := cli.reader.ReadString('\n')
		if err != nil {
			cli.eof = true
		}
		return strings.TrimSpace(line)
	}
	password, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		cli.app.Logger().WarnF("Fail to read password from terminal: %v", err)
		return ""
	}
	return string(password)
}

// readNewPassword enforces the configured length rule, re-prompting until
// the candidate fits.
func (cli *CLI) readNewPassword(label string) string {
	config := cli.app.ConfigManager().Config().General
	for {
		password := cli.readPassword(label)
		if len(password) >= config.PasswordMinLength && len(password) <= config.PasswordMaxLength {
			return password
		}
		if cli.eof {
			return password
		}
		cli.alert.Printf("Password must be %d-%d characters. Try again:\n",
			config.PasswordMinLength, config.PasswordMaxLength)
	}
}
