package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo()

	assert.Equal(t, Version, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, BuildDate, info.BuildDate)
	assert.NotEmpty(t, info.GoVersion)
}

func TestInfoString(t *testing.T) {
	s := GetInfo().String()

	assert.Contains(t, s, "cargo-sync")
	assert.Contains(t, s, Version)
}
