package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdArgs(t *testing.T) {
	cmd := newRootCmd()

	assert.NoError(t, cmd.ValidateArgs(nil))
	assert.NoError(t, cmd.ValidateArgs([]string{"data.csv"}))
	assert.Error(t, cmd.ValidateArgs([]string{"a.csv", "b.csv"}))
}

func TestRootCmdFlagsCoverConfigKeys(t *testing.T) {
	cmd := newRootCmd()

	for key, name := range flagKeys {
		require.NotNil(t, cmd.Flags().Lookup(name), "flag for %s", key)
	}
	assert.Equal(t, ".env", cmd.Flags().Lookup("env-file").DefValue)
}
