// ABOUTME: Package documentation for the mention-autocomplete engine
// ABOUTME: Describes the session lifecycle and how host surfaces plug in

// Package mention implements "@name" autocomplete for text-entry surfaces.
//
// A mention session starts when the text before the cursor ends in an
// unbroken "@query" run and ends on commit, cancel, focus loss, an outside
// pointer event, or when the run is broken (for example by a space). While a
// session is open the Engine keeps a filtered candidate list, a highlighted
// row, and an anchor point for the floating suggestion panel. The anchor is
// resolved once when the session opens and then stays locked.
//
// Hosts feed the engine plain-text snapshots (Cursor counted in runes) and
// key events, and apply the Edit values it returns. Binding wires an Engine
// to a Surface built from the TextSource, GeometrySource and TextSink
// capability interfaces; see package host for plain and rich text adapters.
package mention
