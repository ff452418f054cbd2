package slot

// Surface is the rendering capability a Controller draws on
// Implementations own layout and timing; the controller only sequences calls
type Surface interface {
	// Clear removes every rendered item
	Clear()
	// Append adds one item per name, in order, after the existing items
	Append(names []string)
	// TrimToLast removes every item except the last one
	TrimToLast()
	// Play starts the reel animation and returns a channel closed once it finishes
	// Must be callable again for later spins on the same surface
	Play() <-chan struct{}
}
