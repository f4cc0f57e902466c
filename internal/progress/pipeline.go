package progress

import (
	"golang.org/x/text/language"

	"progress-tracker/internal/domain"
)

// Pipeline carries the collation locale used for name ordering.
type Pipeline struct {
	tag language.Tag
}

func New(tag language.Tag) *Pipeline {
	return &Pipeline{tag: tag}
}

func (p *Pipeline) Locale() language.Tag {
	return p.tag
}

// Derive returns a fresh, ordered slice of the records visible under q.
// The input slice is never modified.
func (p *Pipeline) Derive(records []domain.Record, q domain.Query) []domain.Record {
	view := Filter(records, q.Search, q.Status)
	NewSorter(p.tag).Sort(view, q.Sort)
	return view
}

// Derive runs the pipeline with English collation.
func Derive(records []domain.Record, q domain.Query) []domain.Record {
	return New(language.English).Derive(records, q)
}
