package manifest

import (
	"path/filepath"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Run("loads a valid manifest", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "manifest.yaml", `
packages:
  - name: ripgrep
    version: 14.1.0
    profile: release
    bins:
      - rg
  - name: local-tool
    version: 0.5.3
    no_default_features: true
    profile: debug
    source_path: /home/user/local-tool
`)

		pkgs, err := Load(path)

		require.NoError(t, err)
		require.Len(t, pkgs, 2)
		assert.Equal(t, "ripgrep", pkgs[0].Name)
		assert.Equal(t, "14.1.0", pkgs[0].Version.String())
		assert.Equal(t, []string{"rg"}, pkgs[0].Bins)
		require.NotNil(t, pkgs[1].SourcePath)
		assert.Equal(t, "/home/user/local-tool", *pkgs[1].SourcePath)
	})

	t.Run("missing file is a load error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, ErrLoadManifest)
	})

	t.Run("invalid YAML is a load error", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "manifest.yaml", "packages: [}")
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrLoadManifest)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "manifest.yaml", `
packages:
  - name: foo
    version: 1.0.0
    profile: release
    nonsense: true
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrLoadManifest)
	})

	t.Run("duplicate names are rejected", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "manifest.yaml", `
packages:
  - name: foo
    version: 1.0.0
    profile: release
  - name: foo
    version: 2.0.0
    profile: release
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrLoadManifest)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("missing version is rejected", func(t *testing.T) {
		path := testutil.WriteFile(t, t.TempDir(), "manifest.yaml", `
packages:
  - name: foo
    profile: release
`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrLoadManifest)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	target := "x86_64-unknown-linux-gnu"
	versionReq := "^14"
	pkgs := []crates.Package{
		{
			Name:       "ripgrep",
			Version:    semver.MustParse("14.1.0"),
			Features:   []string{"pcre2"},
			Profile:    "release",
			Target:     &target,
			VersionReq: &versionReq,
			Bins:       []string{"rg"},
		},
	}

	path := filepath.Join(t.TempDir(), "nested", "manifest.yaml")
	require.NoError(t, Save(path, pkgs))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, pkgs[0].Name, loaded[0].Name)
	assert.True(t, loaded[0].Version.Equal(pkgs[0].Version))
	assert.Equal(t, pkgs[0].Features, loaded[0].Features)
	require.NotNil(t, loaded[0].Target)
	assert.Equal(t, target, *loaded[0].Target)
	assert.Equal(t, pkgs[0].Bins, loaded[0].Bins)
}
