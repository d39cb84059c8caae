package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Vikramardham/mcplibrary"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

var _ mcplibrary.CrawlStore = (*Store)(nil)

// Store implements mcplibrary.CrawlStore using SQLite.
type Store struct {
	db *DB
}

// NewStore creates a new Store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// SaveResult persists a crawl result, replacing any previous result for
// the same root URL. The crawl row and its page rows are written in one
// transaction.
func (s *Store) SaveResult(ctx context.Context, result *mcplibrary.CrawlResult) error {
	if result == nil || result.RootURL == "" {
		return mcplibrary.Errorf(mcplibrary.EINVALID, "crawl result with root URL required")
	}

	conventional, err := json.Marshal(result.Conventional)
	if err != nil {
		return mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding conventional tree: %v", err)
	}
	enhanced, err := json.Marshal(result.Enhanced)
	if err != nil {
		return mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding enhanced tree: %v", err)
	}
	summary, err := json.Marshal(result.Summary)
	if err != nil {
		return mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding summary: %v", err)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// ON DELETE CASCADE removes the previous crawl's pages.
	if _, err := tx.ExecContext(ctx, `DELETE FROM crawls WHERE root_url = ?`, result.RootURL); err != nil {
		return err
	}

	crawlID := uuid.New().String()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO crawls (id, root_url, conventional, enhanced, enhanced_fell_back, summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, crawlID, result.RootURL, string(conventional), string(enhanced),
		result.EnhancedFellBack, string(summary), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for pos, rec := range result.Pages.Records() {
		images, err := json.Marshal(rec.Images)
		if err != nil {
			return mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding images: %v", err)
		}
		links, err := json.Marshal(rec.Links)
		if err != nil {
			return mcplibrary.Errorf(mcplibrary.EINTERNAL, "encoding links: %v", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO pages (id, crawl_id, url, title, content, content_hash, images, links, state, http_code, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), crawlID, rec.URL, rec.Title, rec.Content, hashContent(rec.Content),
			string(images), string(links), string(rec.Status.State), rec.Status.HTTPCode, pos)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadResult retrieves a previously saved crawl. Returns ENOTFOUND when
// no result exists for the root URL.
func (s *Store) LoadResult(ctx context.Context, rootURL string) (*mcplibrary.CrawlResult, error) {
	var (
		crawlID          string
		conventionalData string
		enhancedData     string
		enhancedFellBack bool
		summaryData      string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, conventional, enhanced, enhanced_fell_back, summary
		FROM crawls
		WHERE root_url = ?
	`, rootURL).Scan(&crawlID, &conventionalData, &enhancedData, &enhancedFellBack, &summaryData)
	if err == sql.ErrNoRows {
		return nil, mcplibrary.Errorf(mcplibrary.ENOTFOUND, "no saved crawl for %s", rootURL)
	}
	if err != nil {
		return nil, err
	}

	var conventional, enhanced mcplibrary.TreeNode
	if err := json.Unmarshal([]byte(conventionalData), &conventional); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt conventional tree for %s: %v", rootURL, err)
	}
	if err := json.Unmarshal([]byte(enhancedData), &enhanced); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt enhanced tree for %s: %v", rootURL, err)
	}
	var summary mcplibrary.CrawlSummary
	if err := json.Unmarshal([]byte(summaryData), &summary); err != nil {
		return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt summary for %s: %v", rootURL, err)
	}

	pages, err := s.loadPages(ctx, crawlID)
	if err != nil {
		return nil, err
	}

	return &mcplibrary.CrawlResult{
		RootURL:          rootURL,
		Pages:            pages,
		Conventional:     &conventional,
		Enhanced:         &enhanced,
		EnhancedFellBack: enhancedFellBack,
		Summary:          summary,
	}, nil
}

func (s *Store) loadPages(ctx context.Context, crawlID string) (*mcplibrary.PageMap, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title, content, images, links, state, http_code
		FROM pages
		WHERE crawl_id = ?
		ORDER BY position ASC
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := mcplibrary.NewPageMap()
	for rows.Next() {
		var (
			rec        mcplibrary.PageRecord
			imagesData string
			linksData  string
			state      string
		)
		if err := rows.Scan(&rec.URL, &rec.Title, &rec.Content, &imagesData, &linksData, &state, &rec.Status.HTTPCode); err != nil {
			return nil, err
		}
		rec.Status.State = mcplibrary.FetchState(state)
		if err := json.Unmarshal([]byte(imagesData), &rec.Images); err != nil {
			return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt images for %s: %v", rec.URL, err)
		}
		if err := json.Unmarshal([]byte(linksData), &rec.Links); err != nil {
			return nil, mcplibrary.Errorf(mcplibrary.EINTERNAL, "corrupt links for %s: %v", rec.URL, err)
		}
		pages.Add(&rec)
	}

	return pages, rows.Err()
}

// ListRoots returns the root URLs with saved results, most recent first.
func (s *Store) ListRoots(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT root_url FROM crawls ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roots := []string{}
	for rows.Next() {
		var root string
		if err := rows.Scan(&root); err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}

	return roots, rows.Err()
}

// DeleteResult removes a saved crawl. Returns ENOTFOUND when no result
// exists for the root URL.
func (s *Store) DeleteResult(ctx context.Context, rootURL string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM crawls WHERE root_url = ?`, rootURL)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return mcplibrary.Errorf(mcplibrary.ENOTFOUND, "no saved crawl for %s", rootURL)
	}

	return nil
}
