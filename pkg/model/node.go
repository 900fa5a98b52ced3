package model

import (
	"errors"
	"fmt"
)

// Node errors.
var (
	ErrDuplicateEndpoint = errors.New("duplicate endpoint ID")
	ErrEndpointNotFound  = errors.New("endpoint not found")
)

// EndpointID identifies an endpoint within a node.
type EndpointID uint16

// RootEndpointID is the distinguished root endpoint present on every node.
const RootEndpointID EndpointID = 0

// ClusterID identifies a cluster type hosted on an endpoint.
type ClusterID uint32

// DeviceTypeID identifies a standard device type.
type DeviceTypeID uint32

// DeviceType describes what kind of logical device an endpoint represents.
//
// CBOR encoding (integer keys, per the device-type struct wire format):
//
//	{
//	  0: deviceType,  // uint32
//	  1: revision     // uint16
//	}
type DeviceType struct {
	ID       DeviceTypeID `cbor:"0,keyasint"`
	Revision uint16       `cbor:"1,keyasint"`
}

// Endpoint represents a logical sub-device within a node.
// Endpoints are immutable once the node is built; the hosted cluster
// list keeps its declared order.
type Endpoint struct {
	// ID is the endpoint identifier (0 is always the root).
	ID EndpointID

	// DeviceType describes the logical device this endpoint represents.
	DeviceType DeviceType

	// Clusters are the server clusters hosted on this endpoint, in
	// declaration order.
	Clusters []ClusterID
}

// HasCluster returns true if the endpoint hosts the given cluster.
func (e *Endpoint) HasCluster(id ClusterID) bool {
	for _, c := range e.Clusters {
		if c == id {
			return true
		}
	}
	return false
}

// Node is the read-only endpoint collection for one device instance.
// Endpoint iteration order is the construction order and is stable
// across reads.
type Node struct {
	endpoints []Endpoint
}

// NewNode creates a node from the given endpoints.
// Endpoint ids must be unique within the node.
func NewNode(endpoints ...Endpoint) (*Node, error) {
	seen := make(map[EndpointID]struct{}, len(endpoints))
	for _, ep := range endpoints {
		if _, exists := seen[ep.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateEndpoint, ep.ID)
		}
		seen[ep.ID] = struct{}{}
	}
	return &Node{endpoints: endpoints}, nil
}

// Endpoints returns the node's endpoints in iteration order.
// The returned slice is owned by the node and must not be modified.
func (n *Node) Endpoints() []Endpoint {
	return n.endpoints
}

// Endpoint returns the endpoint with the given id.
func (n *Node) Endpoint(id EndpointID) (*Endpoint, bool) {
	for i := range n.endpoints {
		if n.endpoints[i].ID == id {
			return &n.endpoints[i], true
		}
	}
	return nil, false
}

// EndpointCount returns the number of endpoints on the node.
func (n *Node) EndpointCount() int {
	return len(n.endpoints)
}
