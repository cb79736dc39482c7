// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package affiliation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonAcademic(t *testing.T) {
	tests := []struct {
		name    string
		authors []Author
		want    []string
	}{
		{
			name: "company author flagged, academic and unaffiliated excluded",
			authors: []Author{
				{Name: "A", Affiliation: "MIT University"},
				{Name: "B", Affiliation: "Acme Corp"},
				{Name: "C"},
			},
			want: []string{"B"},
		},
		{
			name: "markers match case-insensitively",
			authors: []Author{
				{Name: "A", Affiliation: "HARVARD UNIVERSITY"},
				{Name: "B", Affiliation: "Bell Labs"},
				{Name: "C", Affiliation: "Imperial College London"},
				{Name: "D", Affiliation: "Pasteur INSTITUTE"},
			},
			want: nil,
		},
		{
			name: "marker matches anywhere in the text",
			authors: []Author{
				{Name: "A", Affiliation: "Dept. of Biology, State University of New York"},
				{Name: "B", Affiliation: "Genentech Inc., South San Francisco"},
			},
			want: []string{"B"},
		},
		{
			name: "input order preserved",
			authors: []Author{
				{Name: "X", Affiliation: "Pfizer"},
				{Name: "Y", Affiliation: "Moderna"},
				{Name: "Z", Affiliation: "Oxford University"},
			},
			want: []string{"X", "Y"},
		},
		{
			name: "all unaffiliated",
			authors: []Author{
				{Name: "A"},
				{Name: "B"},
			},
			want: nil,
		},
		{
			name:    "empty input",
			authors: nil,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NonAcademic(tt.authors))
		})
	}
}
