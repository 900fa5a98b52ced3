package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lattice-home/lattice-go/pkg/model"
)

// StateVersion is the current version of the state file format.
const StateVersion = 1

// VersionState contains the persisted data versions for one node.
type VersionState struct {
	// Version is the state file format version.
	Version int `json:"version"`

	// SavedAt is when the state was last saved.
	SavedAt time.Time `json:"saved_at"`

	// DataVersions maps cluster paths (see Key) to their data versions.
	DataVersions map[string]uint32 `json:"data_versions,omitempty"`
}

// Key builds the DataVersions map key for a cluster path.
func Key(endpointID model.EndpointID, clusterID model.ClusterID) string {
	return fmt.Sprintf("%d/0x%04X", endpointID, clusterID)
}

// VersionStore manages persistence of data versions to a JSON file.
type VersionStore struct {
	mu   sync.Mutex
	path string
}

// NewVersionStore creates a new version store.
func NewVersionStore(path string) *VersionStore {
	return &VersionStore{path: path}
}

// Save persists the version state to disk.
func (s *VersionStore) Save(state *VersionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Ensure parent directory exists
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	state.Version = StateVersion
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the version state from disk.
// Returns nil, nil if the file doesn't exist (empty state).
func (s *VersionStore) Load() (*VersionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &VersionState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Clear removes the state file.
func (s *VersionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
