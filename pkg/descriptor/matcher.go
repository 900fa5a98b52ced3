package descriptor

import "github.com/lattice-home/lattice-go/pkg/model"

// PartsMatcher decides whether a candidate endpoint belongs in the parts
// list of an owner endpoint. Implementations must be pure: total,
// deterministic, and free of side effects. The matcher is selected at
// cluster construction time and never switched afterward.
type PartsMatcher interface {
	Describe(owner, candidate model.EndpointID) bool
}

// StandardMatcher models a flat composite device: only the root endpoint
// reports a non-empty parts list, consisting of every other endpoint.
type StandardMatcher struct{}

// Describe reports candidates for the root endpoint only.
func (StandardMatcher) Describe(owner, candidate model.EndpointID) bool {
	return owner == model.RootEndpointID && candidate != owner
}

// AggregatorMatcher models a bridge exposing multiple independent peer
// devices under one root: every endpoint reports every other non-root
// endpoint as a part, and the root never appears in anyone's parts list.
type AggregatorMatcher struct{}

// Describe reports every other non-root candidate.
func (AggregatorMatcher) Describe(owner, candidate model.EndpointID) bool {
	return candidate != owner && candidate != model.RootEndpointID
}

// Compile-time interface satisfaction checks.
var (
	_ PartsMatcher = StandardMatcher{}
	_ PartsMatcher = AggregatorMatcher{}
)
