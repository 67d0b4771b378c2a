package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "0", want: 0, wantOK: true},
		{in: "2", want: 2, wantOK: true},
		{in: "+2", want: 2, wantOK: true},
		{in: "+0", want: 0, wantOK: true},
		{in: "-0"},
		{in: "-1"},
		{in: "++2"},
		{in: "+"},
		{in: ""},
		{in: "1.0"},
		{in: "0x1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseIndex(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSigned(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{in: "150", want: 150, wantOK: true},
		{in: "+150", want: 150, wantOK: true},
		{in: "-500", want: -500, wantOK: true},
		{in: "2147483647", want: 2147483647, wantOK: true},
		{in: "2147483648"},
		{in: "1.5"},
		{in: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseSigned(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "false"} {
		b, ok := parseBool(in)
		assert.True(t, ok, in)
		assert.Equal(t, in == "true", b)
	}

	for _, in := range []string{"1", "0", "t", "f", "T", "TRUE", "True", "FALSE", "yes", " true", ""} {
		_, ok := parseBool(in)
		assert.False(t, ok, "%q should be rejected", in)
	}
}
