package gemini_test

import (
	"context"
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ mcplibrary.Categorizer = (*gemini.Categorizer)(nil)
	_ mcplibrary.Ranker      = (*gemini.Ranker)(nil)
)

func TestCategorizer_Categorize_ReturnsErrorWhenNoItems(t *testing.T) {
	t.Parallel()

	cat := gemini.NewCategorizer(nil)

	_, err := cat.Categorize(context.Background(), "https://example.com", nil)

	require.Error(t, err)
	assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))
}

func TestCategorizer_Categorize_UnavailableWithoutClient(t *testing.T) {
	t.Parallel()

	cat := gemini.NewCategorizer(nil)

	_, err := cat.Categorize(context.Background(), "https://example.com", []mcplibrary.LinkItem{
		{URL: "https://example.com/docs/intro", Title: "Intro"},
	})

	require.Error(t, err)
	assert.Equal(t, mcplibrary.EUNAVAILABLE, mcplibrary.ErrorCode(err))
}

func TestBuildCategorizePrompt(t *testing.T) {
	t.Parallel()

	items := []mcplibrary.LinkItem{
		{URL: "https://example.com/docs/intro", Title: "Introduction", Snippet: "Getting started guide"},
		{URL: "https://example.com/docs/api", Title: "API"},
	}

	prompt, err := gemini.BuildCategorizePrompt("https://example.com", items)

	require.NoError(t, err)
	assert.Contains(t, prompt, "https://example.com/docs/intro")
	assert.Contains(t, prompt, "Getting started guide")
	assert.Contains(t, prompt, `"categories"`)
	assert.Contains(t, prompt, "ONLY valid JSON")
}

func TestParseCategories(t *testing.T) {
	t.Parallel()

	t.Run("parses plain JSON", func(t *testing.T) {
		t.Parallel()

		text := `{"categories": [{"name": "Guides", "description": "How-to material", "urls": ["https://example.com/docs/intro"]}]}`

		groups, err := gemini.ParseCategories(text)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "Guides", groups[0].Name)
		assert.Equal(t, []string{"https://example.com/docs/intro"}, groups[0].URLs)
	})

	t.Run("parses fenced JSON", func(t *testing.T) {
		t.Parallel()

		text := "```json\n{\"categories\": [{\"name\": \"API\", \"urls\": [\"https://example.com/api\"]}]}\n```"

		groups, err := gemini.ParseCategories(text)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "API", groups[0].Name)
	})

	t.Run("parses JSON embedded in prose", func(t *testing.T) {
		t.Parallel()

		text := `Here is the categorization you asked for: {"categories": [{"name": "Reference", "urls": ["https://example.com/ref"]}]} Hope this helps!`

		groups, err := gemini.ParseCategories(text)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "Reference", groups[0].Name)
	})

	t.Run("parses nested subcategories", func(t *testing.T) {
		t.Parallel()

		text := `{"categories": [{"name": "Docs", "subcategories": [{"name": "Tutorials", "urls": ["https://example.com/docs/t1"]}]}]}`

		groups, err := gemini.ParseCategories(text)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Len(t, groups[0].Subcategories, 1)
		assert.Equal(t, "Tutorials", groups[0].Subcategories[0].Name)
	})

	t.Run("returns EUNAVAILABLE for garbage", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseCategories("I could not categorize these pages.")

		require.Error(t, err)
		assert.Equal(t, mcplibrary.EUNAVAILABLE, mcplibrary.ErrorCode(err))
	})

	t.Run("returns EUNAVAILABLE for empty categories", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseCategories(`{"categories": []}`)

		require.Error(t, err)
		assert.Equal(t, mcplibrary.EUNAVAILABLE, mcplibrary.ErrorCode(err))
	})
}

func TestRanker_Rank_Validation(t *testing.T) {
	t.Parallel()

	r := gemini.NewRanker(nil)

	_, err := r.Rank(context.Background(), "", []mcplibrary.LinkItem{{URL: "https://example.com"}})
	require.Error(t, err)
	assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))

	_, err = r.Rank(context.Background(), "how do I install", nil)
	require.Error(t, err)
	assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))
}

func TestBuildRankPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := gemini.BuildRankPrompt("how do I install", []mcplibrary.LinkItem{
		{URL: "https://example.com/docs/install", Title: "Installation"},
	})

	require.NoError(t, err)
	assert.Contains(t, prompt, "how do I install")
	assert.Contains(t, prompt, "https://example.com/docs/install")
	assert.Contains(t, prompt, "relevance_score")
}

func TestParseScores(t *testing.T) {
	t.Parallel()

	t.Run("maps 0-100 scale to unit interval", func(t *testing.T) {
		t.Parallel()

		text := `[{"url": "https://example.com/a", "relevance_score": 90}, {"url": "https://example.com/b", "relevance_score": 25}]`

		scored, err := gemini.ParseScores(text)

		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.InDelta(t, 0.9, scored[0].Score, 1e-9)
		assert.InDelta(t, 0.25, scored[1].Score, 1e-9)
	})

	t.Run("clamps out-of-range scores", func(t *testing.T) {
		t.Parallel()

		text := `[{"url": "https://example.com/a", "relevance_score": 150}, {"url": "https://example.com/b", "relevance_score": -10}]`

		scored, err := gemini.ParseScores(text)

		require.NoError(t, err)
		require.Len(t, scored, 2)
		assert.Equal(t, 1.0, scored[0].Score)
		assert.Equal(t, 0.0, scored[1].Score)
	})

	t.Run("skips entries without a URL", func(t *testing.T) {
		t.Parallel()

		text := `[{"relevance_score": 80}, {"url": "https://example.com/a", "relevance_score": 50}]`

		scored, err := gemini.ParseScores(text)

		require.NoError(t, err)
		require.Len(t, scored, 1)
		assert.Equal(t, "https://example.com/a", scored[0].URL)
	})

	t.Run("parses fenced array", func(t *testing.T) {
		t.Parallel()

		text := "```json\n[{\"url\": \"https://example.com/a\", \"relevance_score\": 70}]\n```"

		scored, err := gemini.ParseScores(text)

		require.NoError(t, err)
		require.Len(t, scored, 1)
	})

	t.Run("returns EUNAVAILABLE for garbage", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseScores("no relevant pages found")

		require.Error(t, err)
		assert.Equal(t, mcplibrary.EUNAVAILABLE, mcplibrary.ErrorCode(err))
	})
}
