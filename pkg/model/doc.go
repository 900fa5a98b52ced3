// Package model implements the Lattice device data model.
//
// # Topology Hierarchy
//
// Lattice uses a fixed hierarchy inspired by Matter:
//
//	Node > Endpoint > Cluster
//
// A Node represents one device instance. Nodes contain one or more
// Endpoints, each representing a logical sub-device. Endpoints host
// Clusters, which group related attributes.
//
// Endpoint 0 is always DEVICE_ROOT. Additional endpoints represent the
// functional sub-devices a node is composed of:
//
//	Node (bridge-001)
//	├── Endpoint 0 (root)
//	│   └── Descriptor
//	├── Endpoint 1 (dimmable light)
//	│   ├── Descriptor
//	│   ├── OnOff
//	│   └── LevelControl
//	└── ...
//
// The Node tree is constructed once at composition time and is read-only
// during request handling. Iteration order over endpoints is the insertion
// order and is stable across reads.
//
// # Addressing
//
// Attributes are addressed by the tuple (EndpointID, ClusterID, AttributeID).
// Attribute ids 0xFFF0 and above are global (system) attributes present on
// every cluster; they are answered from the cluster's static metadata rather
// than by the cluster handler itself.
//
// # Change Tracking
//
// Every cluster instance owns a Dataver, an unsigned change counter that
// advances on any semantic change to the cluster's exposed data. Readers
// supply their last-seen value to skip encoding when nothing changed, and
// the edge-triggered change signal drives report generation.
package model
