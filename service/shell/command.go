package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/parsly"
)

// Command names
const (
	CommandCreate  = "create"
	CommandList    = "list"
	CommandRun     = "run"
	CommandBlock   = "block"
	CommandUnblock = "unblock"
	CommandKill    = "kill"
	CommandHelp    = "help"
	CommandExit    = "exit"
)

var usages = map[string]string{
	CommandCreate:  "create <name>",
	CommandList:    "list",
	CommandRun:     "run <fifo|sjf|rr|priority>",
	CommandBlock:   "block <pid>",
	CommandUnblock: "unblock <pid>",
	CommandKill:    "kill <pid>",
	CommandHelp:    "help",
	CommandExit:    "exit",
}

var commandOrder = []string{CommandCreate, CommandList, CommandRun, CommandBlock, CommandUnblock, CommandKill, CommandHelp, CommandExit}

// Command represents one parsed input line
type Command struct {
	Name      string
	Process   string // process name for create
	Algorithm string
	PID       int
}

// Parse parses a single input line; a blank line yields a nil command.
func Parse(line string) (*Command, error) {
	cursor := parsly.NewCursor("", []byte(strings.TrimSpace(line)), 0)
	matched := cursor.MatchAfterOptional(whitespaceToken, wordToken)
	if matched.Code != wordCode {
		return nil, nil
	}
	ret := &Command{Name: strings.ToLower(matched.Text(cursor))}

	switch ret.Name {
	case CommandCreate:
		matched = cursor.MatchAfterOptional(whitespaceToken, textToken)
		if matched.Code != textCode {
			return nil, usageError(ret.Name)
		}
		ret.Process = matched.Text(cursor)
		return ret, nil
	case CommandRun:
		matched = cursor.MatchAfterOptional(whitespaceToken, wordToken)
		if matched.Code != wordCode {
			return nil, usageError(ret.Name)
		}
		ret.Algorithm = matched.Text(cursor)
	case CommandBlock, CommandUnblock, CommandKill:
		matched = cursor.MatchAfterOptional(whitespaceToken, integerToken)
		if matched.Code != integerCode {
			return nil, usageError(ret.Name)
		}
		pid, err := strconv.Atoi(matched.Text(cursor))
		if err != nil {
			return nil, usageError(ret.Name)
		}
		ret.PID = pid
	case CommandList, CommandHelp, CommandExit:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, ret.Name)
	}
	if cursor.MatchAfterOptional(whitespaceToken, wordToken).Code == wordCode {
		return nil, usageError(ret.Name)
	}
	return ret, nil
}

func usageError(command string) error {
	return &UsageError{Command: command, Usage: usages[command]}
}
