package crawl_test

import (
	"testing"

	"github.com/Vikramardham/mcplibrary/crawl"
	"github.com/stretchr/testify/assert"
)

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short URL unchanged", "https://a.test/docs", 80, "https://a.test/docs"},
		{"exact length unchanged", "https://a.test", 14, "https://a.test"},
		{"long URL keeps the tail", "https://example.com/docs/guides/installation", 20, "...ides/installation"},
		{"tiny max", "https://a.test", 3, "htt"},
		{"zero max", "https://a.test", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.TruncateURL(tt.url, tt.maxLen))
		})
	}
}
