package crates

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Sentinel errors for install-record parsing.
var (
	// ErrMalformedIdent indicates an install identifier that does not
	// split into name, version and origin.
	ErrMalformedIdent = errors.New("malformed install identifier")

	// ErrInvalidVersion indicates an identifier whose version token is
	// not valid semver.
	ErrInvalidVersion = errors.New("invalid version")
)

// Source classifies where a package's content came from.
type Source int

const (
	// SourceRegistry is a package fetched from a registry.
	SourceRegistry Source = iota

	// SourceLocal is a package installed from a local directory.
	SourceLocal

	// SourceGit is a package installed from a git checkout. Git
	// packages are excluded from reconciliation.
	SourceGit
)

// String returns the origin prefix name for the source kind.
func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "path"
	case SourceGit:
		return "git"
	default:
		return "registry"
	}
}

// Ident is the structured form of one install-record key.
type Ident struct {
	Name    string
	Version *semver.Version
	Source  Source

	// SourcePath is set only when Source is SourceLocal.
	SourcePath string
}

const localPrefix = "path+file://"

// ParseIdent parses a composite install identifier of the form
// "<name> <version> (<origin>)" as written by cargo into .crates2.json.
//
// Only the first two spaces split tokens, so a local path containing
// spaces survives intact inside the parentheses. The version must be
// strict semver. Origins are classified by prefix: "git+" is a git
// checkout, "path+file://" is a local directory (the remainder becomes
// SourcePath), anything else is a registry.
func ParseIdent(raw string) (Ident, error) {
	parts := strings.SplitN(raw, " ", 3)
	if len(parts) < 3 {
		return Ident{}, fmt.Errorf("%w: %q", ErrMalformedIdent, raw)
	}

	version, err := semver.StrictNewVersion(parts[1])
	if err != nil {
		return Ident{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, parts[1], err)
	}

	origin := strings.TrimSuffix(strings.TrimPrefix(parts[2], "("), ")")

	ident := Ident{
		Name:    parts[0],
		Version: version,
		Source:  SourceRegistry,
	}

	switch {
	case strings.HasPrefix(origin, "git+"):
		ident.Source = SourceGit
	case strings.HasPrefix(origin, localPrefix):
		ident.Source = SourceLocal
		ident.SourcePath = strings.TrimPrefix(origin, localPrefix)
	}

	return ident, nil
}
