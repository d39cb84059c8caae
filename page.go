package mcplibrary

import (
	"encoding/json"
	"sync"
)

// FetchState classifies the outcome of fetching a single URL.
type FetchState string

// Fetch outcome states.
const (
	FetchOK        FetchState = "ok"
	FetchHTTPError FetchState = "http_error"
	FetchTimeout   FetchState = "timeout"
	FetchParseErr  FetchState = "parse_error"
)

// FetchStatus records how a page fetch ended. HTTPCode is set only for
// FetchHTTPError.
type FetchStatus struct {
	State    FetchState `json:"state"`
	HTTPCode int        `json:"httpCode,omitempty"`
}

// OK reports whether the fetch succeeded.
func (s FetchStatus) OK() bool {
	return s.State == FetchOK
}

// PageRecord holds everything extracted from one fetched URL. Records are
// created once by the crawl engine and immutable afterwards.
type PageRecord struct {
	URL     string      `json:"url"`
	Title   string      `json:"title,omitempty"`
	Content string      `json:"content,omitempty"`
	Images  []string    `json:"images,omitempty"`
	Links   []string    `json:"links,omitempty"`
	Status  FetchStatus `json:"status"`
}

// PageMap maps canonical URLs to page records, preserving discovery order.
// It is safe for concurrent use by multiple goroutines; each key is written
// at most once.
type PageMap struct {
	mu    sync.Mutex
	urls  []string
	pages map[string]*PageRecord
}

// NewPageMap returns an empty PageMap.
func NewPageMap() *PageMap {
	return &PageMap{pages: make(map[string]*PageRecord)}
}

// Add inserts a record keyed by its canonical URL.
// Returns false if the URL is already present; the existing record wins.
func (m *PageMap) Add(rec *PageRecord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pages[rec.URL]; ok {
		return false
	}
	m.pages[rec.URL] = rec
	m.urls = append(m.urls, rec.URL)
	return true
}

// Get returns the record for a canonical URL.
func (m *PageMap) Get(url string) (*PageRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.pages[url]
	return rec, ok
}

// Len returns the number of records.
func (m *PageMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.urls)
}

// URLs returns the canonical URLs in discovery order.
func (m *PageMap) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}

// Records returns the page records in discovery order.
func (m *PageMap) Records() []*PageRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	recs := make([]*PageRecord, 0, len(m.urls))
	for _, u := range m.urls {
		recs = append(recs, m.pages[u])
	}
	return recs
}

// MarshalJSON encodes the map as an ordered array of records so that
// discovery order survives a round trip.
func (m *PageMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Records())
}

// UnmarshalJSON decodes an ordered array of records.
func (m *PageMap) UnmarshalJSON(data []byte) error {
	var recs []*PageRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.urls = nil
	m.pages = make(map[string]*PageRecord, len(recs))
	for _, rec := range recs {
		if _, ok := m.pages[rec.URL]; ok {
			continue
		}
		m.pages[rec.URL] = rec
		m.urls = append(m.urls, rec.URL)
	}
	return nil
}

// CrawlSummary reports how a crawl session went. Per-page failures never
// abort a session, so the summary is how callers learn about them.
type CrawlSummary struct {
	Fetched  int                `json:"fetched"`
	Failed   int                `json:"failed"`
	Failures map[FetchState]int `json:"failures,omitempty"`
}

// CrawlResult is the best-effort outcome of one crawl session.
type CrawlResult struct {
	RootURL          string       `json:"rootUrl"`
	Pages            *PageMap     `json:"pages"`
	Conventional     *TreeNode    `json:"conventional"`
	Enhanced         *TreeNode    `json:"enhanced"`
	EnhancedFellBack bool         `json:"enhancedFellBack"`
	Summary          CrawlSummary `json:"summary"`
}
