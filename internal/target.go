package internal

// Target is the primitive capability for allocating render-target nodes.
// The engine assumes every call is synchronous and succeeds.
type Target interface {
	CreateElement(tag string) Handle
	CreateText(text string) Handle
}

// Handle is an owned reference to a single render-target node. Handles are
// created at most once per tree position and reused across re-renders as
// long as the node's kind does not change.
type Handle interface {
	SetProperty(name string, value any)
	ClearProperty(name string)

	AddListener(event string, listener any)
	RemoveListener(event string, listener any)

	AppendChild(child Handle)
	RemoveChild(child Handle)
}
