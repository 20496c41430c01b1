package shell

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota + 1
	wordCode
	integerCode
	textCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	wordToken       = parsly.NewToken(wordCode, "Word", &wordMatcher{})
	integerToken    = parsly.NewToken(integerCode, "Integer", &integerMatcher{})
	textToken       = parsly.NewToken(textCode, "Text", &textMatcher{})
)

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// wordMatcher matches a run of non whitespace bytes
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for pos := cursor.Pos; pos < cursor.InputSize && !isSpace(cursor.Input[pos]); pos++ {
		matched++
	}
	return matched
}

// integerMatcher matches an optionally signed decimal number terminated by whitespace or end of input
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	if pos < cursor.InputSize && (input[pos] == '-' || input[pos] == '+') {
		pos++
	}
	digits := 0
	for ; pos < cursor.InputSize && input[pos] >= '0' && input[pos] <= '9'; pos++ {
		digits++
	}
	if digits == 0 {
		return 0
	}
	if pos < cursor.InputSize && !isSpace(input[pos]) {
		return 0
	}
	return pos - cursor.Pos
}

// textMatcher matches the rest of the input, trailing whitespace excluded
type textMatcher struct{}

func (m *textMatcher) Match(cursor *parsly.Cursor) int {
	end := cursor.InputSize
	for end > cursor.Pos && isSpace(cursor.Input[end-1]) {
		end--
	}
	return end - cursor.Pos
}
