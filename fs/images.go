package fs

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// imagesDir is the subdirectory for downloaded images within a crawl
// directory.
const imagesDir = "images"

// SaveImages writes downloaded image bytes under the crawl directory for
// the given root URL. File names derive from the image URL's base name,
// prefixed with a hash of the full URL to avoid collisions.
func (s *Store) SaveImages(rootURL string, images map[string][]byte) error {
	if len(images) == 0 {
		return nil
	}

	key, err := RootKey(rootURL)
	if err != nil {
		return err
	}
	dir := filepath.Join(s.baseDir, key, imagesDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for imageURL, data := range images {
		name := imageFileName(imageURL)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return err
		}
	}

	return nil
}

// imageFileName builds a collision-free file name for an image URL.
func imageFileName(imageURL string) string {
	base := "image"
	if u, err := url.Parse(imageURL); err == nil {
		if b := path.Base(u.Path); b != "" && b != "/" && b != "." {
			base = sanitizeFileName(b)
		}
	}
	return fmt.Sprintf("%016x_%s", xxhash.Sum64String(imageURL), base)
}

func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
