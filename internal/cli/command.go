package cli

import "strings"

// Command is one of the actions a user can pick from the menu.
type Command int

const (
	CommandUnknown Command = iota
	CommandAdd
	CommandView
	CommandBackup
	CommandQuit
)

// ParseCommand maps a menu input line to its Command. The line is trimmed
// and case folded; anything unrecognized maps to CommandUnknown.
func ParseCommand(s string) Command {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return CommandAdd
	case "v":
		return CommandView
	case "b":
		return CommandBackup
	case "q":
		return CommandQuit
	}
	return CommandUnknown
}
