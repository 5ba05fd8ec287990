package statistics

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/amitbasuri/numstats-go/internal/apperr"
)

// NumsParam is the query parameter that carries the comma-separated numbers
const NumsParam = "nums"

// Parser turns the raw nums parameter into an ordered list of integers
type Parser struct {
	// Strict requires every token to be a whole base-10 integer.
	// When false a token is read up to its first non-numeric character,
	// so "12abc" yields 12.
	Strict bool
}

// NewParser creates a new parser
func NewParser(strict bool) *Parser {
	return &Parser{Strict: strict}
}

// Parse splits raw on commas and parses every token in order.
// It stops at the first token that is not an integer.
func (p *Parser) Parse(raw string) ([]int64, error) {
	if raw == "" {
		return nil, apperr.MissingParameter(NumsParam)
	}

	tokens := strings.Split(raw, ",")
	nums := make([]int64, 0, len(tokens))
	for _, token := range tokens {
		n, ok := p.parseToken(token)
		if !ok {
			return nil, apperr.InvalidNumber(token)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func (p *Parser) parseToken(token string) (int64, bool) {
	if p.Strict {
		n, err := strconv.ParseInt(token, 10, 64)
		return n, err == nil
	}
	return parseLeadingInt(token)
}

// parseLeadingInt reads an integer from the start of s: leading whitespace or
// byte order marks, an optional sign, an optional 0x prefix, then as many
// digits as follow.
// Anything after the digits is ignored.
func parseLeadingInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, isLeadingSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.ParseInt(sign+s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isLeadingSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}
