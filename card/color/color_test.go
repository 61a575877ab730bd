package color_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unotable/uno/card/color"
)

func TestString(t *testing.T) {
	assert.Equal(t, "Red", color.Red.String())
	assert.Equal(t, "Green", color.Green.String())
	assert.Equal(t, "Blue", color.Blue.String())
	assert.Equal(t, "Yellow", color.Yellow.String())
	assert.Equal(t, "Unpicked", color.Unpicked.String())
}

func TestByName(t *testing.T) {
	scenarios := []struct {
		name          string
		expectedColor color.Color
		expectError   bool
	}{
		{name: "Red", expectedColor: color.Red},
		{name: "red", expectedColor: color.Red},
		{name: "YELLOW", expectedColor: color.Yellow},
		{name: "green", expectedColor: color.Green},
		{name: "blue", expectedColor: color.Blue},
		{name: "Unpicked", expectError: true},
		{name: "purple", expectError: true},
		{name: "", expectError: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			c, err := color.ByName(scenario.name)
			if scenario.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expectedColor, c)
		})
	}
}

func TestPicked(t *testing.T) {
	require.Equal(t, []color.Color{color.Red, color.Green, color.Blue, color.Yellow}, color.Picked())
}

func TestPaintUnpicked(t *testing.T) {
	require.Equal(t, "Wildcard", color.Unpicked.Paint("Wildcard"))
	require.Equal(t, "Draw 4", color.Unpicked.Paintf("Draw %d", 4))
}
