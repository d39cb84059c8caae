package fs

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/Vikramardham/mcplibrary"
)

// csvContentLimit caps the content column so spreadsheet tools stay usable.
const csvContentLimit = 1000

// WriteCSV writes successfully fetched pages as CSV rows of title, URL,
// truncated content, and space-separated image URLs.
func WriteCSV(w io.Writer, pages *mcplibrary.PageMap) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"title", "url", "content", "images"}); err != nil {
		return err
	}

	for _, rec := range pages.Records() {
		if !rec.Status.OK() {
			continue
		}
		content := mcplibrary.Truncate(rec.Content, csvContentLimit)
		row := []string{rec.Title, rec.URL, content, strings.Join(rec.Images, " ")}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
