// Package descriptor implements the Descriptor cluster (0x001D).
//
// The Descriptor cluster exposes the topology of a node: for each endpoint
// it answers four standardized lists:
//
//   - DeviceTypeList: the device type of the endpoint
//   - ServerList: the server clusters hosted on the endpoint
//   - ClientList: always empty, client clusters are not modeled
//   - PartsList: the endpoints composing the topology under the endpoint
//
// Parts composition is a pluggable policy. The standard matcher models a
// flat composite device: only the root endpoint reports parts, namely every
// other endpoint. The aggregator matcher models a bridge exposing
// independent peer devices: every endpoint reports every other non-root
// endpoint.
//
// One Cluster instance serves one endpoint and owns that endpoint's data
// version counter. Reads are version-gated: a requester presenting the
// current version is answered with zero writes.
package descriptor
