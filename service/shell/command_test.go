package shell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      *Command
		expectUsage bool
		expectErr   error
	}{
		{description: "blank", input: "   "},
		{description: "create", input: "create editor", expect: &Command{Name: CommandCreate, Process: "editor"}},
		{description: "create keeps spaces in name", input: "  create  my text editor  ", expect: &Command{Name: CommandCreate, Process: "my text editor"}},
		{description: "create without name", input: "create", expectUsage: true},
		{description: "create with blank name", input: "create    ", expectUsage: true},
		{description: "list", input: "list", expect: &Command{Name: CommandList}},
		{description: "list with argument", input: "list all", expectUsage: true},
		{description: "case insensitive command", input: "RUN rr", expect: &Command{Name: CommandRun, Algorithm: "rr"}},
		{description: "run without algorithm", input: "run", expectUsage: true},
		{description: "run with two algorithms", input: "run fifo sjf", expectUsage: true},
		{description: "run keeps unknown algorithm for the engine", input: "run roundrobin", expect: &Command{Name: CommandRun, Algorithm: "roundrobin"}},
		{description: "block", input: "block 3", expect: &Command{Name: CommandBlock, PID: 3}},
		{description: "unblock", input: "unblock\t12", expect: &Command{Name: CommandUnblock, PID: 12}},
		{description: "kill negative pid", input: "kill -1", expect: &Command{Name: CommandKill, PID: -1}},
		{description: "kill non integer", input: "kill abc", expectUsage: true},
		{description: "block mixed pid", input: "block 12abc", expectUsage: true},
		{description: "block missing pid", input: "block", expectUsage: true},
		{description: "block extra argument", input: "block 1 2", expectUsage: true},
		{description: "help", input: "help", expect: &Command{Name: CommandHelp}},
		{description: "exit", input: "exit", expect: &Command{Name: CommandExit}},
		{description: "unknown", input: "reboot now", expectErr: ErrUnknownCommand},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := Parse(testCase.input)
			if testCase.expectUsage {
				assert.True(t, errors.Is(err, ErrMalformedCommand), "%v", err)
				var usage *UsageError
				if assert.True(t, errors.As(err, &usage)) {
					assert.Contains(t, usage.Error(), "usage: ")
				}
				return
			}
			if testCase.expectErr != nil {
				assert.True(t, errors.Is(err, testCase.expectErr), "%v", err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}
