package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("should be disabled when the variable is unset", func(t *testing.T) {
		t.Setenv("TIMETRACK_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("should be enabled for any non-empty value", func(t *testing.T) {
		t.Setenv("TIMETRACK_DEBUG", "1")
		assert.True(t, DebugEnabled())

		t.Setenv("TIMETRACK_DEBUG", "true")
		assert.True(t, DebugEnabled())
	})
}
