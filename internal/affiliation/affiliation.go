// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package affiliation classifies paper authors by their stated
// affiliation text. The classifier is a pure function with no coupling to
// the fetch pipeline, which currently leaves its output fields empty; a
// future pipeline can wire it in without touching fetch logic.
package affiliation

import "regexp"

// Author is one author record from a paper's metadata.
type Author struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
}

// academicPattern matches the markers that flag an affiliation string as
// institutional: university, college, institute, lab.
var academicPattern = regexp.MustCompile(`(?i)university|college|institute|lab`)

// NonAcademic returns the names of authors whose affiliation text exists
// and matches none of the academic markers, in input order. Authors
// without affiliation text are excluded from consideration entirely —
// they are neither academic nor non-academic.
func NonAcademic(authors []Author) []string {
	var names []string
	for _, a := range authors {
		if a.Affiliation == "" {
			continue
		}
		if !academicPattern.MatchString(a.Affiliation) {
			names = append(names, a.Name)
		}
	}
	return names
}
