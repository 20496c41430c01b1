package meta

import (
	"os"
	"strings"
)

const envPrefix = "${env."

// expandEnv replaces ${env.KEY} with the value of the KEY environment variable.
// Unset variables expand to an empty string; malformed expressions are kept as is.
func expandEnv(value string) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	rest := value
	for {
		before, after, found := strings.Cut(rest, envPrefix)
		b.WriteString(before)
		if !found {
			break
		}
		key, tail, closed := strings.Cut(after, "}")
		if !closed {
			b.WriteString(envPrefix)
			b.WriteString(after)
			break
		}
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			rest = after
			continue
		}
		b.WriteString(os.Getenv(key))
		rest = tail
	}
	return b.String()
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return true
}
