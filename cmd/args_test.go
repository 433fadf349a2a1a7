package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"positive sides", []string{"3", "4", "5"}, []string{"3", "4", "5"}},
		{"negative first", []string{"-3", "4", "5"}, []string{"--", "-3", "4", "5"}},
		{"negative middle", []string{"3", "-4.5", "5"}, []string{"--", "3", "-4.5", "5"}},
		{"flag kept in front", []string{"-3", "--debug", "4", "5"}, []string{"--debug", "--", "-3", "4", "5"}},
		{"negative infinity", []string{"-inf", "4", "5"}, []string{"--", "-inf", "4", "5"}},
		{"negative overflow", []string{"-1e400", "4", "5"}, []string{"--", "-1e400", "4", "5"}},
		{"negative hex stays a flag", []string{"-0x1p2", "4", "5"}, []string{"-0x1p2", "4", "5"}},
		{"terminator already present", []string{"--", "-3", "4", "5"}, []string{"--", "-3", "4", "5"}},
		{"flags only", []string{"--help"}, []string{"--help"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.args))
		})
	}
}
