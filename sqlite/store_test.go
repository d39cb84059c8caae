package sqlite_test

import (
	"context"
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ mcplibrary.CrawlStore = (*sqlite.Store)(nil)

func testResult(rootURL string) *mcplibrary.CrawlResult {
	pages := mcplibrary.NewPageMap()
	pages.Add(&mcplibrary.PageRecord{
		URL:     rootURL,
		Title:   "Home",
		Content: "Welcome.",
		Status:  mcplibrary.FetchStatus{State: mcplibrary.FetchOK},
	})
	pages.Add(&mcplibrary.PageRecord{
		URL:     rootURL + "/docs/guide",
		Title:   "Guide",
		Content: "How to use it.",
		Images:  []string{rootURL + "/diagram.png"},
		Links:   []string{rootURL},
		Status:  mcplibrary.FetchStatus{State: mcplibrary.FetchOK},
	})
	pages.Add(&mcplibrary.PageRecord{
		URL:    rootURL + "/broken",
		Status: mcplibrary.FetchStatus{State: mcplibrary.FetchHTTPError, HTTPCode: 500},
	})

	root := mcplibrary.NewCategoryNode("root", "Website Structure")
	docs := root.AddChild(mcplibrary.NewCategoryNode("docs", "Docs"))
	docs.AddChild(&mcplibrary.TreeNode{
		Kind:  mcplibrary.KindPage,
		Key:   "guide",
		URL:   rootURL + "/docs/guide",
		Title: "Guide",
	})

	return &mcplibrary.CrawlResult{
		RootURL:      rootURL,
		Pages:        pages,
		Conventional: root,
		Enhanced:     root,
		Summary: mcplibrary.CrawlSummary{
			Fetched: 2,
			Failed:  1,
			Failures: map[mcplibrary.FetchState]int{
				mcplibrary.FetchHTTPError: 1,
			},
		},
	}
}

func TestStore_SaveAndLoadResult(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))
	result := testResult("https://example.com")

	require.NoError(t, store.SaveResult(context.Background(), result))

	loaded, err := store.LoadResult(context.Background(), "https://example.com")
	require.NoError(t, err)

	assert.Equal(t, result.RootURL, loaded.RootURL)
	assert.Equal(t, result.Summary, loaded.Summary)
	assert.Equal(t, result.Pages.URLs(), loaded.Pages.URLs())

	guide, ok := loaded.Pages.Get("https://example.com/docs/guide")
	require.True(t, ok)
	assert.Equal(t, "Guide", guide.Title)
	assert.Equal(t, []string{"https://example.com/diagram.png"}, guide.Images)

	broken, ok := loaded.Pages.Get("https://example.com/broken")
	require.True(t, ok)
	assert.Equal(t, mcplibrary.FetchHTTPError, broken.Status.State)
	assert.Equal(t, 500, broken.Status.HTTPCode)

	docs := loaded.Conventional.Child("docs")
	require.NotNil(t, docs)
	assert.NotNil(t, docs.Child("guide"))
}

func TestStore_SaveResult_ReplacesPrevious(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	require.NoError(t, store.SaveResult(context.Background(), testResult("https://example.com")))

	second := testResult("https://example.com")
	second.Summary.Fetched = 42
	require.NoError(t, store.SaveResult(context.Background(), second))

	loaded, err := store.LoadResult(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Summary.Fetched)

	roots, err := store.ListRoots(context.Background())
	require.NoError(t, err)
	assert.Len(t, roots, 1)
}

func TestStore_LoadResult_NotFound(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	_, err := store.LoadResult(context.Background(), "https://example.com")

	require.Error(t, err)
	assert.Equal(t, mcplibrary.ENOTFOUND, mcplibrary.ErrorCode(err))
}

func TestStore_ListRoots(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	require.NoError(t, store.SaveResult(context.Background(), testResult("https://alpha.example.com")))
	require.NoError(t, store.SaveResult(context.Background(), testResult("https://beta.example.com")))

	roots, err := store.ListRoots(context.Background())
	require.NoError(t, err)

	assert.Len(t, roots, 2)
	assert.Contains(t, roots, "https://alpha.example.com")
	assert.Contains(t, roots, "https://beta.example.com")
}

func TestStore_DeleteResult(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))
	require.NoError(t, store.SaveResult(context.Background(), testResult("https://example.com")))

	require.NoError(t, store.DeleteResult(context.Background(), "https://example.com"))

	_, err := store.LoadResult(context.Background(), "https://example.com")
	assert.Equal(t, mcplibrary.ENOTFOUND, mcplibrary.ErrorCode(err))

	err = store.DeleteResult(context.Background(), "https://example.com")
	assert.Equal(t, mcplibrary.ENOTFOUND, mcplibrary.ErrorCode(err))
}

func TestStore_SaveResult_RequiresRootURL(t *testing.T) {
	t.Parallel()

	store := sqlite.NewStore(mustOpenDB(t))

	err := store.SaveResult(context.Background(), &mcplibrary.CrawlResult{})

	require.Error(t, err)
	assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))
}
