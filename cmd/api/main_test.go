package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmdHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "lambda", "send"} {
		cmd, _, err := root.Find([]string{name})
		assert.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestSendFlags(t *testing.T) {
	cmd := newSendCmd()
	for _, flag := range []string{"name", "email", "subject", "message"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}
