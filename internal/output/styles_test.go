package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionStyle(t *testing.T) {
	// Styles depend on terminal capabilities; verify the mapping renders
	// the action text either way.
	for _, action := range []string{ActionInstall, ActionUpdate, ActionRemove, "unknown"} {
		rendered := ActionStyle(action).Render(action)
		assert.Contains(t, rendered, action)
	}
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "done")
}

func TestFormatWarning(t *testing.T) {
	warning := FormatWarning("foo", "binaries missing, will reinstall")
	assert.Contains(t, warning, "foo")
	assert.Contains(t, warning, "binaries missing")
}

func TestTableRender(t *testing.T) {
	table := NewTable("ACTION", "PACKAGE").
		Row("install", "ripgrep").
		Row("remove", "exa")

	rendered := table.String()

	assert.Contains(t, rendered, "ACTION")
	assert.Contains(t, rendered, "ripgrep")
	assert.Contains(t, rendered, "exa")
}
