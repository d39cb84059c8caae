package mcplibrary_test

import (
	"encoding/json"
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMap(t *testing.T) {
	t.Parallel()

	t.Run("preserves discovery order", func(t *testing.T) {
		t.Parallel()

		m := mcplibrary.NewPageMap()
		for _, u := range []string{"https://a.test/z", "https://a.test/a", "https://a.test/m"} {
			m.Add(&mcplibrary.PageRecord{URL: u})
		}

		assert.Equal(t, []string{"https://a.test/z", "https://a.test/a", "https://a.test/m"}, m.URLs())
	})

	t.Run("first record wins on duplicate URL", func(t *testing.T) {
		t.Parallel()

		m := mcplibrary.NewPageMap()
		require.True(t, m.Add(&mcplibrary.PageRecord{URL: "https://a.test", Title: "first"}))
		assert.False(t, m.Add(&mcplibrary.PageRecord{URL: "https://a.test", Title: "second"}))

		rec, ok := m.Get("https://a.test")
		require.True(t, ok)
		assert.Equal(t, "first", rec.Title)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("JSON round trip keeps order", func(t *testing.T) {
		t.Parallel()

		m := mcplibrary.NewPageMap()
		m.Add(&mcplibrary.PageRecord{
			URL:    "https://a.test/docs",
			Title:  "Docs",
			Status: mcplibrary.FetchStatus{State: mcplibrary.FetchOK},
		})
		m.Add(&mcplibrary.PageRecord{
			URL:    "https://a.test/broken",
			Status: mcplibrary.FetchStatus{State: mcplibrary.FetchHTTPError, HTTPCode: 503},
		})

		data, err := json.Marshal(m)
		require.NoError(t, err)

		var decoded mcplibrary.PageMap
		require.NoError(t, json.Unmarshal(data, &decoded))

		assert.Equal(t, m.URLs(), decoded.URLs())
		rec, ok := decoded.Get("https://a.test/broken")
		require.True(t, ok)
		assert.Equal(t, 503, rec.Status.HTTPCode)
	})

	t.Run("records align with URLs", func(t *testing.T) {
		t.Parallel()

		m := mcplibrary.NewPageMap()
		m.Add(&mcplibrary.PageRecord{URL: "https://a.test/1"})
		m.Add(&mcplibrary.PageRecord{URL: "https://a.test/2"})

		recs := m.Records()
		require.Len(t, recs, 2)
		for i, u := range m.URLs() {
			assert.Equal(t, u, recs[i].URL)
		}
	})
}

func TestFetchStatus_OK(t *testing.T) {
	t.Parallel()

	assert.True(t, mcplibrary.FetchStatus{State: mcplibrary.FetchOK}.OK())
	assert.False(t, mcplibrary.FetchStatus{State: mcplibrary.FetchHTTPError, HTTPCode: 404}.OK())
	assert.False(t, mcplibrary.FetchStatus{State: mcplibrary.FetchTimeout}.OK())
	assert.False(t, mcplibrary.FetchStatus{State: mcplibrary.FetchParseErr}.OK())
}
