package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	for _, name := range []string{"search", "categories", "migrate"} {
		assert.NotNil(t, app.Command(name), name)
	}
}

func TestSearchCommand_RequiresQueryAndLocation(t *testing.T) {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"leadctl", "search", "--query", "cafes"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "location")
}

func TestMigrate_UnknownDirection(t *testing.T) {
	app := newApp()
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run([]string{"leadctl", "migrate", "sideways"})

	require.Error(t, err)
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.ExitCode())
	assert.Contains(t, err.Error(), "sideways")
}
