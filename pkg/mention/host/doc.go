// ABOUTME: Package documentation for the mention host adapters
// ABOUTME: Plain is a multi-line rune editor; Rich wraps an HTML document in an embedded frame

// Package host provides mention.Surface implementations for the two kinds of
// text-entry widgets: a plain multi-line editor drawn in monospace cells, and
// a rich-text editor whose HTML content lives inside its own frame.
package host
