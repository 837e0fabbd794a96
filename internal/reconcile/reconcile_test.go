package reconcile

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cargosync/cli/internal/crates"
	"github.com/cargosync/cli/internal/testutil"
)

func pkg(name, version string, bins ...string) crates.Package {
	return crates.Package{
		Name:    name,
		Version: semver.MustParse(version),
		Profile: "release",
		Bins:    bins,
	}
}

// names extracts the package names from an action list.
func names(pkgs []crates.Package) []string {
	out := make([]string, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, p.Name)
	}
	return out
}

func TestReconcile(t *testing.T) {
	t.Run("identical states produce no actions", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "foo")

		state := []crates.Package{pkg("foo", "1.0.0", "foo")}

		res := Reconcile(state, state, Options{BinDir: binDir})

		assert.True(t, res.Empty())
		assert.Empty(t, res.Reinstalls)
	})

	t.Run("missing package is installed", func(t *testing.T) {
		desired := []crates.Package{pkg("foo", "1.0.0", "foo")}

		res := Reconcile(desired, nil, Options{BinDir: t.TempDir()})

		assert.Equal(t, []string{"foo"}, names(res.Install))
		assert.Empty(t, res.Update)
		assert.Empty(t, res.Remove)
		assert.Empty(t, res.Reinstalls)
	})

	t.Run("missing binaries trigger a reinstall", func(t *testing.T) {
		desired := []crates.Package{pkg("foo", "1.0.0", "foo")}
		actual := []crates.Package{pkg("foo", "1.0.0", "foo")}

		res := Reconcile(desired, actual, Options{BinDir: t.TempDir()})

		assert.Equal(t, []string{"foo"}, names(res.Install))
		assert.Equal(t, []string{"foo"}, res.Reinstalls)
	})

	t.Run("matched package with no declared binaries is left alone", func(t *testing.T) {
		desired := []crates.Package{pkg("lib-only", "1.0.0")}
		actual := []crates.Package{pkg("lib-only", "1.0.0")}

		res := Reconcile(desired, actual, Options{BinDir: t.TempDir()})

		assert.True(t, res.Empty())
	})

	t.Run("newer desired version is updated", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "foo")

		desired := []crates.Package{pkg("foo", "0.2.0", "foo")}
		actual := []crates.Package{pkg("foo", "0.1.0", "foo")}

		res := Reconcile(desired, actual, Options{BinDir: binDir})

		require.Len(t, res.Update, 1)
		assert.Equal(t, "foo", res.Update[0].Name)
		assert.Equal(t, "0.2.0", res.Update[0].Version.String())
		assert.Empty(t, res.Install)
		assert.Empty(t, res.Remove)
	})

	t.Run("equal or lower desired version never updates", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "foo")

		actual := []crates.Package{pkg("foo", "1.5.0", "foo")}

		for _, desiredVersion := range []string{"1.5.0", "1.4.9", "0.9.0"} {
			res := Reconcile([]crates.Package{pkg("foo", desiredVersion, "foo")}, actual, Options{BinDir: binDir})
			assert.Empty(t, res.Update, "desired version %s", desiredVersion)
		}
	})

	t.Run("pre-release ordering is honored", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "foo")

		desired := []crates.Package{pkg("foo", "1.0.0", "foo")}
		actual := []crates.Package{pkg("foo", "1.0.0-beta.1", "foo")}

		res := Reconcile(desired, actual, Options{BinDir: binDir})

		assert.Equal(t, []string{"foo"}, names(res.Update))
	})

	t.Run("undeclared package is removed", func(t *testing.T) {
		actual := []crates.Package{pkg("bar", "1.0.0", "bar")}

		res := Reconcile(nil, actual, Options{BinDir: t.TempDir()})

		assert.Equal(t, []string{"bar"}, names(res.Remove))
		assert.Empty(t, res.Install)
		assert.Empty(t, res.Update)
	})

	t.Run("remove pass is complete and exact", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "keep")

		desired := []crates.Package{pkg("keep", "1.0.0", "keep")}
		actual := []crates.Package{
			pkg("keep", "1.0.0", "keep"),
			pkg("drop-a", "0.1.0"),
			pkg("drop-b", "2.0.0"),
		}

		res := Reconcile(desired, actual, Options{BinDir: binDir})

		assert.ElementsMatch(t, []string{"drop-a", "drop-b"}, names(res.Remove))
	})

	t.Run("broken and outdated package appears only in install", func(t *testing.T) {
		desired := []crates.Package{pkg("foo", "2.0.0", "foo")}
		actual := []crates.Package{pkg("foo", "1.0.0", "foo")}

		// Binary dir is empty, so foo is broken as well as outdated.
		res := Reconcile(desired, actual, Options{BinDir: t.TempDir()})

		assert.Equal(t, []string{"foo"}, names(res.Install))
		assert.Empty(t, res.Update)
	})

	t.Run("skip flags gate each pass independently", func(t *testing.T) {
		desired := []crates.Package{
			pkg("new", "1.0.0", "new"),
			pkg("old", "2.0.0", "old"),
		}
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "old")
		testutil.Touch(t, binDir, "gone")
		actual := []crates.Package{
			pkg("old", "1.0.0", "old"),
			pkg("gone", "1.0.0", "gone"),
		}

		full := Reconcile(desired, actual, Options{BinDir: binDir})
		require.Equal(t, []string{"new"}, names(full.Install))
		require.Equal(t, []string{"old"}, names(full.Update))
		require.Equal(t, []string{"gone"}, names(full.Remove))

		noInstall := Reconcile(desired, actual, Options{SkipInstall: true, BinDir: binDir})
		assert.Empty(t, noInstall.Install)
		assert.Equal(t, []string{"old"}, names(noInstall.Update))
		assert.Equal(t, []string{"gone"}, names(noInstall.Remove))

		noUpdate := Reconcile(desired, actual, Options{SkipUpdate: true, BinDir: binDir})
		assert.Equal(t, []string{"new"}, names(noUpdate.Install))
		assert.Empty(t, noUpdate.Update)
		assert.Equal(t, []string{"gone"}, names(noUpdate.Remove))

		noRemove := Reconcile(desired, actual, Options{SkipRemove: true, BinDir: binDir})
		assert.Equal(t, []string{"new"}, names(noRemove.Install))
		assert.Equal(t, []string{"old"}, names(noRemove.Update))
		assert.Empty(t, noRemove.Remove)
	})

	t.Run("repeated invocations are deterministic", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "old")

		desired := []crates.Package{
			pkg("new", "1.0.0", "new"),
			pkg("old", "2.0.0", "old"),
		}
		actual := []crates.Package{
			pkg("old", "1.0.0", "old"),
			pkg("gone", "1.0.0"),
		}

		first := Reconcile(desired, actual, Options{BinDir: binDir})
		second := Reconcile(desired, actual, Options{BinDir: binDir})

		assert.ElementsMatch(t, names(first.Install), names(second.Install))
		assert.ElementsMatch(t, names(first.Update), names(second.Update))
		assert.ElementsMatch(t, names(first.Remove), names(second.Remove))
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		desired := []crates.Package{pkg("foo", "2.0.0", "foo")}
		actual := []crates.Package{pkg("foo", "1.0.0", "foo"), pkg("bar", "1.0.0")}

		Reconcile(desired, actual, Options{BinDir: t.TempDir()})

		assert.Equal(t, "2.0.0", desired[0].Version.String())
		assert.Len(t, actual, 2)
		assert.Equal(t, "1.0.0", actual[0].Version.String())
	})
}

func TestReconcileEndToEnd(t *testing.T) {
	t.Run("single package upgrade", func(t *testing.T) {
		binDir := t.TempDir()
		testutil.Touch(t, binDir, "foo")

		desired := []crates.Package{pkg("foo", "0.2.0")}
		actual := []crates.Package{pkg("foo", "0.1.0", "foo")}

		res := Reconcile(desired, actual, Options{BinDir: binDir})

		require.Len(t, res.Update, 1)
		assert.Equal(t, "foo", res.Update[0].Name)
		assert.Equal(t, "0.2.0", res.Update[0].Version.String())
		assert.Empty(t, res.Install)
		assert.Empty(t, res.Remove)
	})

	t.Run("empty manifest removes everything", func(t *testing.T) {
		actual := []crates.Package{pkg("bar", "1.0.0")}

		res := Reconcile([]crates.Package{}, actual, Options{BinDir: t.TempDir()})

		require.Len(t, res.Remove, 1)
		assert.Equal(t, "bar", res.Remove[0].Name)
		assert.Empty(t, res.Install)
		assert.Empty(t, res.Update)
	})
}

func TestActionSet(t *testing.T) {
	t.Run("empty and total", func(t *testing.T) {
		var set ActionSet
		assert.True(t, set.Empty())
		assert.Zero(t, set.Total())

		set.Install = append(set.Install, pkg("a", "1.0.0"))
		set.Remove = append(set.Remove, pkg("b", "1.0.0"))
		assert.False(t, set.Empty())
		assert.Equal(t, 2, set.Total())
	})
}
