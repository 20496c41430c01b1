package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadLines(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		limit       int
		expect      []string
		expectLong  []bool
	}{
		{description: "empty input", input: ""},
		{description: "trailing line without newline", input: "list\ncreate a", limit: 16, expect: []string{"list", "create a"}, expectLong: []bool{false, false}},
		{description: "crlf and blank lines", input: "list\r\n\r\nexit\n", limit: 16, expect: []string{"list", "", "exit"}, expectLong: []bool{false, false, false}},
		{description: "line over limit", input: "create " + strings.Repeat("x", 9000) + "\nlist\n", limit: 4096, expect: []string{"", "list"}, expectLong: []bool{true, false}},
		{description: "line at limit", input: "abcd\n", limit: 4, expect: []string{"abcd"}, expectLong: []bool{false}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			lines := make(chan *input)
			done := make(chan struct{})
			defer close(done)
			go readLines(strings.NewReader(testCase.input), testCase.limit, lines, done)

			var texts []string
			var long []bool
			for line := range lines {
				assert.NoError(t, line.err)
				texts = append(texts, line.text)
				long = append(long, line.tooLong)
			}
			assert.Equal(t, testCase.expect, texts)
			assert.Equal(t, testCase.expectLong, long)
		})
	}
}
