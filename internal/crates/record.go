package crates

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrLoadRecord indicates the install record could not be read or is not
// valid JSON.
var ErrLoadRecord = errors.New("loading install record")

// record mirrors the on-disk layout of .crates2.json. Cargo owns the
// format; only the fields reconciliation needs are decoded.
type record struct {
	Installs map[string]installInfo `json:"installs"`
}

// installInfo is the per-install metadata cargo stores against each
// composite identifier.
type installInfo struct {
	Features          []string `json:"features"`
	NoDefaultFeatures bool     `json:"no_default_features"`
	AllFeatures       bool     `json:"all_features"`
	Profile           string   `json:"profile"`
	Target            *string  `json:"target"`
	VersionReq        *string  `json:"version_req"`
	Bins              []string `json:"bins"`
}

// ParseRecord decodes an install record and returns the normalized list
// of installed packages. Git-sourced entries are skipped entirely; they
// are outside reconciliation. Any malformed identifier fails the whole
// load, since the record is machine-generated and a bad key means the
// record is corrupt. The order of the returned slice is unspecified.
func ParseRecord(data []byte) ([]Package, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRecord, err)
	}

	pkgs := make([]Package, 0, len(rec.Installs))
	for raw, info := range rec.Installs {
		ident, err := ParseIdent(raw)
		if err != nil {
			return nil, err
		}

		if ident.Source == SourceGit {
			continue
		}

		pkg := Package{
			Name:              ident.Name,
			Version:           ident.Version,
			Features:          info.Features,
			AllFeatures:       info.AllFeatures,
			NoDefaultFeatures: info.NoDefaultFeatures,
			Profile:           info.Profile,
			Target:            info.Target,
			VersionReq:        info.VersionReq,
			Bins:              info.Bins,
		}
		if ident.Source == SourceLocal {
			path := ident.SourcePath
			pkg.SourcePath = &path
		}

		pkgs = append(pkgs, pkg)
	}

	return pkgs, nil
}

// LoadInstalled reads the install record at the given path and returns
// the normalized installed-package list.
func LoadInstalled(path string) ([]Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRecord, err)
	}
	return ParseRecord(data)
}
