// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI PubMed E-utilities API.
//
// Two endpoints are used, both with retmode=json: esearch.fcgi turns a
// keyword query into an ordered list of PMIDs, and esummary.fcgi returns
// the summary record (title, publication date) for one PMID.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/pubfetch/internal/httputil"
	"github.com/pdiddy/pubfetch/pkg/types"
)

// DefaultBaseURL is the public NCBI E-utilities endpoint root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// Missing is the sentinel substituted for any absent summary field.
const Missing = "N/A"

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 20
)

// Client queries the PubMed search and summary endpoints. The base URL
// comes from PubMedConfig so tests can substitute an httptest server.
type Client struct {
	http *http.Client
	cfg  types.PubMedConfig
}

// New builds a Client from cfg, filling defaults for the base URL,
// timeout, and result limit.
func New(cfg types.PubMedConfig) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = defaultMaxResults
	}
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
	}
}

// Search sends term to the esearch endpoint and returns the matching
// PMIDs in response order. A response without an idlist field yields an
// empty sequence. A non-200 status or malformed JSON aborts the run.
func (c *Client) Search(ctx context.Context, term string) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty query: provide a search term")
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {term},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(c.cfg.MaxResults)},
	}
	c.identify(params)

	var er esearchResponse
	if err := httputil.GetJSON(ctx, c.http, c.cfg.BaseURL+"/esearch.fcgi?"+params.Encode(), c.cfg.UserAgent, &er); err != nil {
		return nil, fmt.Errorf("PubMed esearch: %w", err)
	}
	return er.Result.IDList, nil
}

// Summary holds the per-PMID metadata used to build a PaperRecord.
type Summary struct {
	PMID    string
	Title   string
	PubDate string
}

// Summary fetches the summary record for exactly one PMID. When the
// response carries no entry for the PMID it returns (nil, nil) and the
// caller skips that document; missing title or pubdate fields are
// replaced by the Missing sentinel.
func (c *Client) Summary(ctx context.Context, pmid string) (*Summary, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"id":      {pmid},
		"retmode": {"json"},
	}
	c.identify(params)

	var es esummaryResponse
	if err := httputil.GetJSON(ctx, c.http, c.cfg.BaseURL+"/esummary.fcgi?"+params.Encode(), c.cfg.UserAgent, &es); err != nil {
		return nil, fmt.Errorf("PubMed esummary for %s: %w", pmid, err)
	}

	raw, ok := es.Result[pmid]
	if !ok {
		return nil, nil
	}

	var doc docSummary
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing summary for %s: %w", pmid, err)
	}

	s := &Summary{PMID: pmid, Title: doc.Title, PubDate: doc.PubDate}
	if s.Title == "" {
		s.Title = Missing
	}
	if s.PubDate == "" {
		s.PubDate = Missing
	}
	return s, nil
}

// FetchAll runs the full pipeline: one search, then one summary request
// per PMID, sequentially and in search order. PMIDs without a summary
// entry are dropped; any transport or decoding failure aborts the run.
// The affiliation classifier is not wired into this pipeline, so the
// classifier output fields keep their empty defaults.
func (c *Client) FetchAll(ctx context.Context, term string) ([]types.PaperRecord, error) {
	ids, err := c.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	records := make([]types.PaperRecord, 0, len(ids))
	for _, id := range ids {
		sum, err := c.Summary(ctx, id)
		if err != nil {
			return nil, err
		}
		if sum == nil {
			continue
		}
		records = append(records, types.PaperRecord{
			PubmedID:                 sum.PMID,
			Title:                    sum.Title,
			PubDate:                  sum.PubDate,
			NonAcademicAuthors:       []string{},
			CompanyAffiliations:      []string{},
			CorrespondingAuthorEmail: Missing,
		})
	}
	return records, nil
}

// identify appends the NCBI api_key and email parameters when configured.
func (c *Client) identify(params url.Values) {
	if c.cfg.APIKey != "" {
		params.Set("api_key", c.cfg.APIKey)
	}
	if c.cfg.Email != "" {
		params.Set("email", c.cfg.Email)
	}
}

// E-utilities JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// esummaryResponse keeps the result object as raw messages because its
// keys are the requested PMIDs plus a "uids" bookkeeping entry.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

type docSummary struct {
	UID     string `json:"uid"`
	Title   string `json:"title"`
	PubDate string `json:"pubdate"`
}
