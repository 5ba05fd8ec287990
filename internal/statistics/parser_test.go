package statistics

import (
	"testing"

	"github.com/amitbasuri/numstats-go/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"single", "7", []int64{7}},
		{"preserves order", "5,3,1,4", []int64{5, 3, 1, 4}},
		{"negatives and plus sign", "-2,+3,-0", []int64{-2, 3, 0}},
		{"leading whitespace", " 1, 2,\t3", []int64{1, 2, 3}},
		{"leading byte order mark", "\uFEFF5,\u00A06", []int64{5, 6}},
		{"numeric prefix", "12abc,4", []int64{12, 4}},
		{"decimal truncates", "1.9,2.1", []int64{1, 2}},
		{"hex prefix", "0x1f,0X10", []int64{31, 16}},
		{"int64 bounds", "9223372036854775807,-9223372036854775808", []int64{9223372036854775807, -9223372036854775808}},
	}

	p := NewParser(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParser_Parse_Missing(t *testing.T) {
	_, err := NewParser(false).Parse("")
	require.Error(t, err)

	reqErr := apperr.As(err)
	assert.Equal(t, apperr.KindMissingParameter, reqErr.Kind)
	assert.Equal(t, 400, reqErr.Status)
	assert.Equal(t, "Query parameter 'nums' is required", reqErr.Message)
}

func TestParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		message string
	}{
		{"word", "abc", "'abc' is not a valid integer"},
		{"reports first offender only", "1,foo,bar", "'foo' is not a valid integer"},
		{"empty token", "1,,2", "'' is not a valid integer"},
		{"trailing comma", "1,2,", "'' is not a valid integer"},
		{"raw token kept in message", "1, x", "' x' is not a valid integer"},
		{"bare sign", "-", "'-' is not a valid integer"},
		{"bare hex prefix", "0x", "'0x' is not a valid integer"},
		{"overflow", "9223372036854775808", "'9223372036854775808' is not a valid integer"},
	}

	p := NewParser(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Parse(tt.raw)
			require.Error(t, err)
			assert.Nil(t, got)

			reqErr := apperr.As(err)
			assert.Equal(t, apperr.KindInvalidNumber, reqErr.Kind)
			assert.Equal(t, 400, reqErr.Status)
			assert.Equal(t, tt.message, reqErr.Message)
		})
	}
}

func TestParser_Parse_Strict(t *testing.T) {
	p := NewParser(true)

	got, err := p.Parse("1,-2,+3")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -2, 3}, got)

	for _, raw := range []string{"12abc", "1.5", " 1", "0x10"} {
		_, err := p.Parse(raw)
		require.Error(t, err, raw)
		assert.Equal(t, "'"+raw+"' is not a valid integer", err.Error())
	}
}
