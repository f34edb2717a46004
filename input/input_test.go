package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBindingsCoverEveryAction(t *testing.T) {
	b := DefaultBindings()
	for a := range actionNames {
		assert.NotEmpty(t, b[a], a.String())
	}
}

func TestState(t *testing.T) {
	s := State{ActionAttack: true}
	assert.True(t, s.Pressed(ActionAttack))
	assert.False(t, s.Pressed(ActionMagic))
	assert.Equal(t, "unknown", Action(99).String())
}
