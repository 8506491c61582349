package driven

import "context"

// TextHit is one keyword-search result from an encyclopedic corpus.
type TextHit struct {
	Title string

	// Snippet is plain text; markup has been stripped.
	Snippet string

	PageID int64
	Lang   string
}

// TextSearcher runs keyword searches against a free-text corpus.
type TextSearcher interface {
	// Search returns up to limit hits for phrase in the given language edition.
	Search(ctx context.Context, lang, phrase string, limit int) ([]TextHit, error)

	// PageURL returns the canonical URL for a hit.
	PageURL(hit TextHit) string
}
