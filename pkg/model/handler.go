package model

import "github.com/lattice-home/lattice-go/pkg/wire"

// AttrDetails describes one attribute read request after path resolution.
type AttrDetails struct {
	// Node is the endpoint tree read during this request. The handler
	// must not mutate it.
	Node *Node

	// EndpointID is the target endpoint.
	EndpointID EndpointID

	// AttrID is the requested attribute id.
	AttrID uint16
}

// IsSystem returns true if the requested attribute is a global (system)
// attribute answered by cluster metadata rather than the handler.
func (d *AttrDetails) IsSystem() bool {
	return d.AttrID >= AttrIDGlobalBase
}

// Handler answers attribute reads for one cluster instance.
//
// Read must complete without blocking: it only traverses in-memory
// structures and writes to the in-memory encoder. Callers serialize
// access to one handler instance.
type Handler interface {
	Read(attr *AttrDetails, encoder *wire.AttrDataEncoder) error
}

// ChangeNotifier exposes an edge-triggered change signal. ConsumeChange
// returns true exactly once per burst of changes and false on every call
// until the next change.
type ChangeNotifier interface {
	ConsumeChange() bool
}
