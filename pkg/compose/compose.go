// Package compose loads YAML device-composition files and builds the
// node tree plus the parts-composition policy from them.
//
// A composition file declares the endpoints of one node:
//
//	matcher: standard        # or: aggregator
//	endpoints:
//	  - id: 0
//	    device_type: {id: 0x0016, revision: 1}
//	    clusters: [0x001D]
//	  - id: 1
//	    device_type: {id: 0x0101, revision: 2}
//	    clusters: [0x001D, 0x0006, 0x0008]
package compose

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lattice-home/lattice-go/pkg/descriptor"
	"github.com/lattice-home/lattice-go/pkg/model"
)

// Composition errors.
var (
	ErrNoEndpoints    = errors.New("composition declares no endpoints")
	ErrNoRootEndpoint = errors.New("composition has no root endpoint 0")
	ErrUnknownMatcher = errors.New("unknown matcher")
)

// Matcher names accepted in composition files.
const (
	MatcherStandard   = "standard"
	MatcherAggregator = "aggregator"
)

// Config is the parsed composition file.
type Config struct {
	// Matcher selects the parts-composition policy. Empty means standard.
	Matcher string `yaml:"matcher"`

	// Endpoints declares the node's endpoints in iteration order.
	Endpoints []EndpointConfig `yaml:"endpoints"`
}

// EndpointConfig declares one endpoint.
type EndpointConfig struct {
	ID         uint16           `yaml:"id"`
	DeviceType DeviceTypeConfig `yaml:"device_type"`
	Clusters   []uint32         `yaml:"clusters"`
}

// DeviceTypeConfig declares an endpoint's device type.
type DeviceTypeConfig struct {
	ID       uint32 `yaml:"id"`
	Revision uint16 `yaml:"revision"`
}

// Load reads and parses a composition file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read composition: %w", err)
	}
	return Parse(data)
}

// Parse parses composition YAML.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the composition for structural errors.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return ErrNoEndpoints
	}

	seen := make(map[uint16]struct{}, len(c.Endpoints))
	hasRoot := false
	for _, ep := range c.Endpoints {
		if _, exists := seen[ep.ID]; exists {
			return fmt.Errorf("endpoint %d: %w", ep.ID, model.ErrDuplicateEndpoint)
		}
		seen[ep.ID] = struct{}{}
		if ep.ID == uint16(model.RootEndpointID) {
			hasRoot = true
		}
	}
	if !hasRoot {
		return ErrNoRootEndpoint
	}

	switch c.Matcher {
	case "", MatcherStandard, MatcherAggregator:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMatcher, c.Matcher)
	}
	return nil
}

// BuildNode constructs the node tree, preserving declaration order.
func (c *Config) BuildNode() (*model.Node, error) {
	endpoints := make([]model.Endpoint, 0, len(c.Endpoints))
	for _, ep := range c.Endpoints {
		clusters := make([]model.ClusterID, 0, len(ep.Clusters))
		for _, cl := range ep.Clusters {
			clusters = append(clusters, model.ClusterID(cl))
		}
		endpoints = append(endpoints, model.Endpoint{
			ID: model.EndpointID(ep.ID),
			DeviceType: model.DeviceType{
				ID:       model.DeviceTypeID(ep.DeviceType.ID),
				Revision: ep.DeviceType.Revision,
			},
			Clusters: clusters,
		})
	}
	return model.NewNode(endpoints...)
}

// BuildMatcher constructs the declared parts-composition policy.
func (c *Config) BuildMatcher() (descriptor.PartsMatcher, error) {
	switch c.Matcher {
	case "", MatcherStandard:
		return descriptor.StandardMatcher{}, nil
	case MatcherAggregator:
		return descriptor.AggregatorMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, c.Matcher)
	}
}
