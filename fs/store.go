package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vikramardham/mcplibrary"
)

// File names within a crawl directory.
const (
	metaFile         = "meta.json"
	pagesFile        = "pages_content.json"
	conventionalFile = "tree_structure.json"
	enhancedFile     = "enhanced_tree.json"
	markdownFile     = "tree_structure.md"
	csvFile          = "content.csv"
)

var _ mcplibrary.CrawlStore = (*Store)(nil)

// Store implements mcplibrary.CrawlStore on the local filesystem. Each
// root URL maps to one directory under baseDir; saves are written to a
// temporary directory and renamed into place so readers never observe a
// half-written result.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// meta holds the parts of a CrawlResult not stored in a dedicated file.
type meta struct {
	RootURL          string                  `json:"rootUrl"`
	EnhancedFellBack bool                    `json:"enhancedFellBack"`
	Summary          mcplibrary.CrawlSummary `json:"summary"`
}

// SaveResult persists a crawl result, replacing any previous result for
// the same root URL.
func (s *Store) SaveResult(ctx context.Context, result *mcplibrary.CrawlResult) error {
	if result == nil || result.RootURL == "" {
		return mcplibrary.Errorf(mcplibrary.EINVALID, "crawl result with root URL required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := RootKey(result.RootURL)
	if err != nil {
		return err
	}

	finalDir := filepath.Join(s.baseDir, key)
	tmpDir := finalDir + ".tmp"

	if err := os.MkdirAll(tmpDir, 0o755); err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	if err := s.writeFiles(tmpDir, result); err != nil {
		return err
	}

	if err := os.RemoveAll(finalDir); err != nil {
		return err
	}
	return os.Rename(tmpDir, finalDir)
}

func (s *Store) writeFiles(dir string, result *mcplibrary.CrawlResult) error {
	m := meta{
		RootURL:          result.RootURL,
		EnhancedFellBack: result.EnhancedFellBack,
		Summary:          result.Summary,
	}
	metaData, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, metaFile), metaData, 0o644); err != nil {
		return err
	}

	pagesData, err := EncodePageMap(result.Pages)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, pagesFile), pagesData, 0o644); err != nil {
		return err
	}

	convData, err := EncodeTree(result.Conventional)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, conventionalFile), convData, 0o644); err != nil {
		return err
	}

	enhData, err := EncodeTree(result.Enhanced)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, enhancedFile), enhData, 0o644); err != nil {
		return err
	}

	// Human-readable exports, derived from the canonical files above.
	md := RenderMarkdownTree(result.Enhanced)
	if err := os.WriteFile(filepath.Join(dir, markdownFile), []byte(md), 0o644); err != nil {
		return err
	}

	csvOut, err := os.Create(filepath.Join(dir, csvFile))
	if err != nil {
		return err
	}
	if err := WriteCSV(csvOut, result.Pages); err != nil {
		csvOut.Close()
		return err
	}
	return csvOut.Close()
}

// LoadResult retrieves a previously saved crawl. Returns ENOTFOUND when
// no result exists for the root URL.
func (s *Store) LoadResult(ctx context.Context, rootURL string) (*mcplibrary.CrawlResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := RootKey(rootURL)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(s.baseDir, key)

	metaData, err := os.ReadFile(filepath.Join(dir, metaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mcplibrary.Errorf(mcplibrary.ENOTFOUND, "no saved crawl for %s", rootURL)
		}
		return nil, err
	}
	var m meta
	if err := json.Unmarshal(metaData, &m); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt crawl metadata for %s: %v", rootURL, err)
	}

	pagesData, err := os.ReadFile(filepath.Join(dir, pagesFile))
	if err != nil {
		return nil, err
	}
	pages, err := DecodePageMap(pagesData)
	if err != nil {
		return nil, err
	}

	convData, err := os.ReadFile(filepath.Join(dir, conventionalFile))
	if err != nil {
		return nil, err
	}
	conventional, err := DecodeTree(convData)
	if err != nil {
		return nil, err
	}

	enhData, err := os.ReadFile(filepath.Join(dir, enhancedFile))
	if err != nil {
		return nil, err
	}
	enhanced, err := DecodeTree(enhData)
	if err != nil {
		return nil, err
	}

	return &mcplibrary.CrawlResult{
		RootURL:          m.RootURL,
		Pages:            pages,
		Conventional:     conventional,
		Enhanced:         enhanced,
		EnhancedFellBack: m.EnhancedFellBack,
		Summary:          m.Summary,
	}, nil
}

// ListRoots returns the root URLs with saved results, in directory order.
func (s *Store) ListRoots(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	roots := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasSuffix(entry.Name(), ".tmp") {
			continue
		}
		metaData, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), metaFile))
		if err != nil {
			continue
		}
		var m meta
		if err := json.Unmarshal(metaData, &m); err != nil || m.RootURL == "" {
			continue
		}
		roots = append(roots, m.RootURL)
	}

	return roots, nil
}

// DeleteResult removes a saved crawl. Returns ENOTFOUND when no result
// exists for the root URL.
func (s *Store) DeleteResult(ctx context.Context, rootURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := RootKey(rootURL)
	if err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, key)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return mcplibrary.Errorf(mcplibrary.ENOTFOUND, "no saved crawl for %s", rootURL)
	}

	return os.RemoveAll(dir)
}

// RootKey converts a root URL into a filesystem-safe directory name.
// Example: https://example.com/docs → example.com_docs
func RootKey(rootURL string) (string, error) {
	u, err := url.Parse(rootURL)
	if err != nil || u.Host == "" {
		return "", mcplibrary.Errorf(mcplibrary.EINVALID, "invalid root URL %q", rootURL)
	}

	key := u.Host + u.Path
	key = strings.Trim(key, "/")
	key = strings.NewReplacer("/", "_", ":", "_", "\\", "_").Replace(key)
	if key == "" {
		return "", mcplibrary.Errorf(mcplibrary.EINVALID, "invalid root URL %q", rootURL)
	}

	return key, nil
}
