package subtitle

import (
	"iter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

// Match is one cue line that contained the search term.
type Match struct {
	Start time.Duration
	Text  string
}

// Search yields every cue line containing term, case-insensitively. The
// returned sequence is lazy and restartable; iterating it again rescans the
// document. Inline styling markup is stripped before matching.
func Search(doc Document, term string) iter.Seq[Match] {
	pattern := search.New(language.Und, search.IgnoreCase).CompileString(term)
	return func(yield func(Match) bool) {
		for _, cue := range doc {
			for _, line := range cue.Text {
				plain := StripMarkup(line)
				if start, _ := pattern.IndexString(plain); start >= 0 {
					if !yield(Match{Start: cue.Start, Text: plain}) {
						return
					}
				}
			}
		}
	}
}
