package term

// Sink is the append-only display the dispatcher writes to. Normal and error
// text share one stream in arrival order and differ only in style.
type Sink interface {
	AppendNormal(text string)
	AppendError(text string)
	RemoveLastNormal() bool
	// Len is the rendered length in characters. Part of the sink contract; the
	// bundled viewport host scrolls on its own and does not call it.
	Len() int
}
