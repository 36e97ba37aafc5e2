package cmdutils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/paymesh/session-gate/internal/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Logger
		errAssert assert.ErrorAssertionFunc
	}{
		{
			name:      "defaults",
			cfg:       config.Logger{},
			errAssert: assert.NoError,
		},
		{
			name:      "json at debug",
			cfg:       config.Logger{Level: "debug", Format: "json"},
			errAssert: assert.NoError,
		},
		{
			name:      "text at warn",
			cfg:       config.Logger{Level: "warn", Format: "text"},
			errAssert: assert.NoError,
		},
		{
			name:      "unknown level",
			cfg:       config.Logger{Level: "loud"},
			errAssert: assert.Error,
		},
		{
			name:      "unknown format",
			cfg:       config.Logger{Format: "xml"},
			errAssert: assert.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.errAssert(t, InitLogger(&tt.cfg))
		})
	}
}
