package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	var testCases = []struct {
		description string
		env         map[string]string
		input       string
		expect      string
	}{
		{
			description: "no expressions",
			input:       "quantum: 2",
			expect:      "quantum: 2",
		},
		{
			description: "single expression",
			env:         map[string]string{"SCHEDSIM_OUT": "/tmp/trace.json"},
			input:       "output: ${env.SCHEDSIM_OUT}",
			expect:      "output: /tmp/trace.json",
		},
		{
			description: "repeated expressions",
			env:         map[string]string{"SCHEDSIM_A": "1", "SCHEDSIM_B": "2"},
			input:       "${env.SCHEDSIM_A}-${env.SCHEDSIM_B}-${env.SCHEDSIM_A}",
			expect:      "1-2-1",
		},
		{
			description: "unset variable",
			input:       "seed: ${env.SCHEDSIM_UNSET}",
			expect:      "seed: ",
		},
		{
			description: "missing closing brace",
			input:       "level: ${env.SCHEDSIM_A",
			expect:      "level: ${env.SCHEDSIM_A",
		},
		{
			description: "invalid key kept literal",
			env:         map[string]string{"SCHEDSIM_B": "2"},
			input:       "${env.a-b} ${env.SCHEDSIM_B}",
			expect:      "${env.a-b} 2",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			for k, v := range testCase.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, testCase.expect, expandEnv(testCase.input))
		})
	}
}
