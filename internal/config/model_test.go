package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettings_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		settings  Settings
		expectErr string
	}{
		{name: "empty is valid", settings: Settings{}},
		{name: "all set", settings: Settings{LogLevel: "debug", LogFormat: "json"}},
		{name: "bad level", settings: Settings{LogLevel: "verbose"}, expectErr: `invalid log level "verbose": must be one of debug, info, warn, error`},
		{name: "bad format", settings: Settings{LogFormat: "xml"}, expectErr: `invalid log format "xml": must be one of text, json`},
		{name: "case sensitive", settings: Settings{LogLevel: "DEBUG"}, expectErr: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.settings.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tc.expectErr)
		})
	}
}
