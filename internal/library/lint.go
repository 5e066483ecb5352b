package library

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// FindingKind classifies a lint finding.
type FindingKind string

const (
	FindingNonSemverVersion FindingKind = "non-semver-version"
	FindingDuplicateName    FindingKind = "duplicate-name"
	FindingMissingLicense   FindingKind = "missing-license"
)

// Finding is an advisory note about a loaded descriptor. Findings never fail a load.
type Finding struct {
	Index   int
	Name    string
	Kind    FindingKind
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("#%d %s: %s", f.Index, f.Name, f.Message)
}

// Lint reports versions that are not semantic versions, repeated names and
// records without licenses, in record order.
func Lint(libs Libraries) []Finding {
	var findings []Finding
	seen := make(map[string]int, len(libs))

	for i, lib := range libs {
		key := strings.ToLower(lib.Name)
		if first, ok := seen[key]; ok {
			findings = append(findings, Finding{
				Index:   i,
				Name:    lib.Name,
				Kind:    FindingDuplicateName,
				Message: fmt.Sprintf("duplicate of #%d", first),
			})
		} else {
			seen[key] = i
		}

		if lib.HasVersion() {
			if _, err := semver.NewVersion(strings.TrimSpace(lib.Version)); err != nil {
				findings = append(findings, Finding{
					Index:   i,
					Name:    lib.Name,
					Kind:    FindingNonSemverVersion,
					Message: fmt.Sprintf("version %q is not a semantic version", lib.Version),
				})
			}
		}

		if !lib.HasLicenses() {
			findings = append(findings, Finding{
				Index:   i,
				Name:    lib.Name,
				Kind:    FindingMissingLicense,
				Message: "no license declared",
			})
		}
	}
	return findings
}
