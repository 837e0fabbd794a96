// Package crates models cargo-installed packages and loads the install
// record cargo maintains in .crates2.json.
package crates

import (
	"github.com/Masterminds/semver/v3"
)

// Package is the normalized representation of one installed or desired
// package. The same shape is used for both sides of a reconciliation.
type Package struct {
	// Name is the crate name, unique within one state list.
	Name string `json:"name"`

	// Version is the exact installed or desired version.
	Version *semver.Version `json:"version"`

	// Features are the optional features the package was installed with.
	Features []string `json:"features,omitempty"`

	// AllFeatures mirrors cargo's --all-features flag.
	AllFeatures bool `json:"all_features"`

	// NoDefaultFeatures mirrors cargo's --no-default-features flag.
	NoDefaultFeatures bool `json:"no_default_features"`

	// Profile is the build profile the package was compiled with.
	Profile string `json:"profile"`

	// Target is the platform triple; nil means the host default.
	Target *string `json:"target,omitempty"`

	// VersionReq is the original version requirement passed at install
	// time. Not used for comparisons.
	VersionReq *string `json:"version_req,omitempty"`

	// Bins are the binaries the package is expected to produce.
	Bins []string `json:"bins,omitempty"`

	// SourcePath is set only for packages installed from a local
	// directory.
	SourcePath *string `json:"source_path,omitempty"`
}

// FindByName returns the package with the given name, or nil.
func FindByName(pkgs []Package, name string) *Package {
	for i := range pkgs {
		if pkgs[i].Name == name {
			return &pkgs[i]
		}
	}
	return nil
}
