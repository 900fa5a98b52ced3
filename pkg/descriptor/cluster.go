package descriptor

import (
	"github.com/lattice-home/lattice-go/pkg/model"
	"github.com/lattice-home/lattice-go/pkg/wire"
)

// Cluster answers Descriptor attribute reads for one endpoint. It holds
// the parts-composition policy and the endpoint's data version counter;
// everything else is read from the node tree per request.
//
// Reads are synchronous and non-blocking: one linear pass over in-memory
// structures, no suspension. The only state crossing requests is the
// data version counter.
type Cluster struct {
	matcher PartsMatcher
	dataver *model.Dataver
}

// NewCluster creates a descriptor handler with the standard parts policy.
func NewCluster() *Cluster {
	return NewClusterMatching(StandardMatcher{}, model.NewDataver())
}

// NewAggregatorCluster creates a descriptor handler with the aggregator
// parts policy.
func NewAggregatorCluster() *Cluster {
	return NewClusterMatching(AggregatorMatcher{}, model.NewDataver())
}

// NewClusterMatching creates a descriptor handler with an explicit parts
// policy and version counter. Used when restoring a persisted data version.
func NewClusterMatching(matcher PartsMatcher, dataver *model.Dataver) *Cluster {
	return &Cluster{matcher: matcher, dataver: dataver}
}

// DataVersion returns the current data version.
func (c *Cluster) DataVersion() uint32 {
	return c.dataver.Get()
}

// DataVersionChanged records a semantic change to the cluster's exposed
// data. Invoked by external mutators when the node topology changes.
func (c *Cluster) DataVersionChanged() {
	c.dataver.Increment()
}

// ConsumeChange clears a pending change signal and reports whether one
// was pending. A burst of changes collapses into a single signal.
func (c *Cluster) ConsumeChange() bool {
	return c.dataver.ConsumeChange()
}

// Read answers one attribute read. The encoder gates on the current data
// version: when the requester already holds current data the read
// succeeds with zero writes.
func (c *Cluster) Read(attr *model.AttrDetails, encoder *wire.AttrDataEncoder) error {
	writer, err := encoder.BeginWithDataver(c.dataver.Get())
	if err != nil {
		return err
	}
	if writer == nil {
		// Requester's data version is current; nothing to write.
		return nil
	}

	if attr.IsSystem() {
		if err := Metadata.ReadSystem(attr.AttrID, writer); err != nil {
			return err
		}
		return writer.Complete()
	}

	id, err := AttributeFromID(attr.AttrID)
	if err != nil {
		return err
	}

	switch id {
	case AttrDeviceTypeList:
		err = c.encodeDeviceTypeList(attr.Node, attr.EndpointID, writer)
	case AttrServerList:
		err = c.encodeServerList(attr.Node, attr.EndpointID, writer)
	case AttrClientList:
		err = c.encodeClientList(writer)
	case AttrPartsList:
		err = c.encodePartsList(attr.Node, attr.EndpointID, writer)
	}
	if err != nil {
		return err
	}

	return writer.Complete()
}

// encodeDeviceTypeList emits the device type of the endpoint whose id
// matches. Ids are unique, so at most one element; an unknown endpoint id
// yields an empty array.
func (c *Cluster) encodeDeviceTypeList(node *model.Node, endpointID model.EndpointID, w *wire.AttrDataWriter) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	for _, ep := range node.Endpoints() {
		if ep.ID == endpointID {
			if err := w.WriteStruct(ep.DeviceType); err != nil {
				return err
			}
		}
	}
	return w.EndArray()
}

// encodeServerList emits the hosted cluster ids of the matching endpoint
// in their stored order.
func (c *Cluster) encodeServerList(node *model.Node, endpointID model.EndpointID, w *wire.AttrDataWriter) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	for _, ep := range node.Endpoints() {
		if ep.ID == endpointID {
			for _, cluster := range ep.Clusters {
				if err := w.WriteUint32(uint32(cluster)); err != nil {
					return err
				}
			}
		}
	}
	return w.EndArray()
}

// encodeClientList always emits an empty array; client clusters are not
// modeled.
func (c *Cluster) encodeClientList(w *wire.AttrDataWriter) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	return w.EndArray()
}

// encodePartsList emits every endpoint the parts policy accepts for the
// target endpoint, preserving node iteration order.
func (c *Cluster) encodePartsList(node *model.Node, endpointID model.EndpointID, w *wire.AttrDataWriter) error {
	if err := w.StartArray(); err != nil {
		return err
	}
	for _, ep := range node.Endpoints() {
		if c.matcher.Describe(endpointID, ep.ID) {
			if err := w.WriteUint16(uint16(ep.ID)); err != nil {
				return err
			}
		}
	}
	return w.EndArray()
}

// Compile-time interface satisfaction checks.
var (
	_ model.Handler        = (*Cluster)(nil)
	_ model.ChangeNotifier = (*Cluster)(nil)
)
