package shell

import "io"

// Option configures a shell session
type Option func(s *Shell)

// WithOutput sets the session output, stdout by default
func WithOutput(out io.Writer) Option {
	return func(s *Shell) {
		s.out = out
	}
}

// WithPrompt sets the prompt printed before every line
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

// WithEcho prints every command read, used when replaying scripts
func WithEcho(echo bool) Option {
	return func(s *Shell) {
		s.echo = echo
	}
}
