// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord is the unit of output: one row in the CSV export. Every
// record carries exactly these six fields, in this order, matching the
// export header — fields the API did not populate hold their sentinel or
// empty defaults.
type PaperRecord struct {
	// PubmedID is the PMID assigned by PubMed.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or "N/A" when the summary lacks one.
	Title string `json:"title" yaml:"title"`

	// PubDate is the publication date string as returned by the summary
	// endpoint (e.g. "2024 Mar 15"), or "N/A" when absent.
	PubDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists authors whose affiliation was classified
	// as non-academic. The current pipeline leaves it empty.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations lists the company affiliations of those
	// authors. The current pipeline leaves it empty.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingAuthorEmail is the corresponding author's email
	// address. The summary endpoint does not expose it; the pipeline
	// emits the "N/A" sentinel.
	CorrespondingAuthorEmail string `json:"corresponding_author_email" yaml:"corresponding_author_email"`
}
