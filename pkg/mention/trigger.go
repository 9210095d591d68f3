// ABOUTME: Trigger detection: finds the in-progress "@query" run ending at the cursor
// ABOUTME: Pure function over a text snapshot; out-of-range cursors mean "no trigger"

package mention

import "unicode"

// TriggerRune starts a mention.
const TriggerRune = '@'

// Detector recognizes mention triggers. The zero value implements the default
// rules.
type Detector struct {
	// RequireWordBoundary rejects an '@' glued to a preceding word, so
	// "bob@example" does not open a session.
	RequireWordBoundary bool
}

// Detect reports the mention in progress at cursor using the default rules.
func Detect(text string, cursor int) (Query, bool) {
	return Detector{}.Detect(text, cursor)
}

// Detect scans text[:cursor] backwards for the nearest '@'. Reaching
// whitespace or the start of the text first means there is no mention. An
// escaped trigger ("\@") never opens a session.
func (d Detector) Detect(text string, cursor int) (Query, bool) {
	runes := []rune(text)
	if cursor < 0 || cursor > len(runes) {
		return Query{}, false
	}

	at := -1
	for i := cursor - 1; i >= 0; i-- {
		r := runes[i]
		if r == TriggerRune {
			at = i
			break
		}
		if !isQueryRune(r) {
			return Query{}, false
		}
	}
	if at < 0 {
		return Query{}, false
	}

	if at > 0 {
		prev := runes[at-1]
		if prev == '\\' {
			return Query{}, false
		}
		if d.RequireWordBoundary && !isBoundaryRune(prev) {
			return Query{}, false
		}
	}

	return Query{TriggerOffset: at, Text: string(runes[at+1 : cursor])}, true
}

// isQueryRune reports whether r may appear in a query: anything except
// whitespace and a second trigger.
func isQueryRune(r rune) bool {
	return r != TriggerRune && !unicode.IsSpace(r)
}

// isBoundaryRune reports whether r may directly precede a trigger under
// RequireWordBoundary.
func isBoundaryRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '(', '[', '{', '"', '\'', '<':
		return true
	}
	return false
}
