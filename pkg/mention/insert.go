// ABOUTME: MentionInserter: splices a candidate token over the session's "@query" span
// ABOUTME: RemoveAll strips every occurrence of a token when an attachment is dropped

package mention

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrTriggerMismatch means the trigger offset no longer points at an '@',
// usually because the host buffer changed under an open session.
var ErrTriggerMismatch = errors.New("trigger offset does not point at '@'")

// Insert replaces the '@' at triggerOffset and the run of letters and digits
// that follows it with c's token and a trailing space. Only that span is
// rewritten; text before and after it, including earlier tokens and any
// punctuation after the query, is untouched. The returned cursor sits right
// after the inserted space.
func Insert(text string, triggerOffset int, c Candidate) (Edit, error) {
	runes := []rune(text)
	if triggerOffset < 0 || triggerOffset >= len(runes) || runes[triggerOffset] != TriggerRune {
		return Edit{}, fmt.Errorf("insert at %d: %w", triggerOffset, ErrTriggerMismatch)
	}

	end := triggerOffset + 1
	for end < len(runes) && (unicode.IsLetter(runes[end]) || unicode.IsDigit(runes[end])) {
		end++
	}

	token := []rune(c.Token() + " ")
	out := make([]rune, 0, len(runes)-(end-triggerOffset)+len(token))
	out = append(out, runes[:triggerOffset]...)
	out = append(out, token...)
	out = append(out, runes[end:]...)

	return Edit{Text: string(out), Cursor: triggerOffset + len(token)}, nil
}

// RemoveAll deletes every occurrence of c's token that ends at a word
// boundary, along with the single space Insert put after it. cursor is
// shifted to stay on the same character.
//
// The boundary check means "@Ana" inside "@Anastasia" is not a match and is
// kept, so text may still contain the token string as a prefix of a longer
// name after removal. Count uses the same boundary rule.
func RemoveAll(text string, cursor int, c Candidate) Edit {
	runes := []rune(text)
	cursor = min(max(cursor, 0), len(runes))
	if c.DisplayName == "" {
		return Edit{Text: text, Cursor: cursor}
	}

	token := []rune(c.Token())
	out := make([]rune, 0, len(runes))
	newCursor := cursor
	for i := 0; i < len(runes); {
		if !tokenAt(runes, i, token) {
			out = append(out, runes[i])
			i++
			continue
		}
		n := len(token)
		if i+n < len(runes) && runes[i+n] == ' ' {
			n++
		}
		switch {
		case cursor >= i+n:
			newCursor -= n
		case cursor > i:
			newCursor -= cursor - i
		}
		i += n
	}
	return Edit{Text: string(out), Cursor: newCursor}
}

// Count returns how many boundary-terminated occurrences of c's token text holds.
func Count(text string, c Candidate) int {
	if c.DisplayName == "" {
		return 0
	}
	runes := []rune(text)
	token := []rune(c.Token())
	n := 0
	for i := 0; i < len(runes); i++ {
		if tokenAt(runes, i, token) {
			n++
			i += len(token) - 1
		}
	}
	return n
}

func tokenAt(runes []rune, i int, token []rune) bool {
	if i+len(token) > len(runes) {
		return false
	}
	for j, r := range token {
		if runes[i+j] != r {
			return false
		}
	}
	end := i + len(token)
	return end == len(runes) || !continuesWord(runes[end])
}

func continuesWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
