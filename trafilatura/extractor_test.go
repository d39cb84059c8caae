package trafilatura_test

import (
	"testing"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ mcplibrary.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Installation - Project Docs</title>
<meta property="og:title" content="Installation">
</head>
<body>
<main>
<h1>Installation</h1>
<p>Install the package with your favorite package manager.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content and code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>API Reference</title></head>
<body>
<nav><a href="/">Home</a><a href="/api">API</a></nav>
<article>
<h1>API Reference</h1>
<p>The client exposes a single Connect method documented below.</p>
<pre><code>client.Connect(ctx)</code></pre>
</article>
<footer>Copyright 2025</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "single Connect method")
		assert.Contains(t, result.ContentHTML, "client.Connect(ctx)")
	})

	t.Run("strips navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Guide</title></head>
<body>
<nav class="site-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/guide">Guide</a></li>
</ul>
</nav>
<main>
<h1>User Guide</h1>
<p>This paragraph holds the substantive guide content readers want.</p>
</main>
<footer><p>Copyright 2025 Example Corp</p></footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive guide content")
		assert.NotContains(t, result.ContentHTML, "site-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2025 Example Corp")
	})

	t.Run("returns error on empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, mcplibrary.EINVALID, mcplibrary.ErrorCode(err))
	})
}
