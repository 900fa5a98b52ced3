package model

import (
	"errors"
	"fmt"

	"github.com/lattice-home/lattice-go/pkg/wire"
)

// ErrUnsupportedAttribute indicates an attribute id outside the cluster's
// declared set. It is a protocol-level error, never silently ignored.
var ErrUnsupportedAttribute = errors.New("unsupported attribute")

// Global attribute IDs (present on all clusters).
const (
	// AttrIDGlobalBase is the start of global attributes (0xFFF0-0xFFFF).
	AttrIDGlobalBase uint16 = 0xFFF0

	// AttrIDAttributeList is the list of supported attribute IDs.
	AttrIDAttributeList uint16 = 0xFFFB

	// AttrIDFeatureMap is the cluster capability bitmap.
	AttrIDFeatureMap uint16 = 0xFFFC

	// AttrIDClusterRevision is the cluster implementation revision.
	AttrIDClusterRevision uint16 = 0xFFFD
)

// Access flags for attributes.
type Access uint8

const (
	// AccessRead allows reading the attribute.
	AccessRead Access = 1 << iota

	// AccessWrite allows writing the attribute.
	AccessWrite

	// AccessView marks the attribute readable at view privilege.
	AccessView

	// AccessRV is read at view privilege, the common read-only case.
	AccessRV = AccessRead | AccessView
)

// CanRead returns true if reading is allowed.
func (a Access) CanRead() bool { return a&AccessRead != 0 }

// CanWrite returns true if writing is allowed.
func (a Access) CanWrite() bool { return a&AccessWrite != 0 }

// String returns the access flags as a string.
func (a Access) String() string {
	var s string
	if a.CanRead() {
		s += "R"
	}
	if a.CanWrite() {
		s += "W"
	}
	if a&AccessView != 0 {
		s += "V"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Quality bits for attributes.
type Quality uint8

const (
	// QualityNone marks an attribute with no special qualities.
	QualityNone Quality = 0

	// QualityNullable indicates null is a valid value.
	QualityNullable Quality = 1 << iota

	// QualityPersistent indicates the value survives restarts.
	QualityPersistent

	// QualityFixed indicates the value never changes after construction.
	QualityFixed
)

// AttributeDecl declares one attribute in a cluster's attribute table.
type AttributeDecl struct {
	ID      uint16
	Access  Access
	Quality Quality
}

// Global attribute declarations shared by all cluster metadata tables.
var (
	// FeatureMapDecl declares the featureMap global attribute.
	FeatureMapDecl = AttributeDecl{ID: AttrIDFeatureMap, Access: AccessRV, Quality: QualityNone}

	// AttributeListDecl declares the attributeList global attribute.
	AttributeListDecl = AttributeDecl{ID: AttrIDAttributeList, Access: AccessRV, Quality: QualityNone}

	// ClusterRevisionDecl declares the clusterRevision global attribute.
	ClusterRevisionDecl = AttributeDecl{ID: AttrIDClusterRevision, Access: AccessRV, Quality: QualityFixed}
)

// ClusterMetadata is the immutable declaration of a cluster's identity and
// attribute table. One instance is shared by every handler of that cluster
// type; it never changes after construction.
type ClusterMetadata struct {
	// ID is the cluster identifier.
	ID ClusterID

	// Revision is the cluster implementation revision.
	Revision uint16

	// FeatureMap is the capability bitmap for this cluster.
	FeatureMap uint32

	// Attributes is the declared attribute table, global attributes included.
	Attributes []AttributeDecl
}

// Supports returns true if the attribute id is in the declared table.
func (m *ClusterMetadata) Supports(attrID uint16) bool {
	for _, decl := range m.Attributes {
		if decl.ID == attrID {
			return true
		}
	}
	return false
}

// ReadSystem answers a global (system) attribute read from the metadata
// table alone. The caller finalizes the writer.
func (m *ClusterMetadata) ReadSystem(attrID uint16, w *wire.AttrDataWriter) error {
	switch attrID {
	case AttrIDFeatureMap:
		return w.WriteValue(m.FeatureMap)

	case AttrIDClusterRevision:
		return w.WriteValue(m.Revision)

	case AttrIDAttributeList:
		if err := w.StartArray(); err != nil {
			return err
		}
		for _, decl := range m.Attributes {
			if err := w.WriteUint16(decl.ID); err != nil {
				return err
			}
		}
		return w.EndArray()

	default:
		return fmt.Errorf("%w: system attribute %#04x", ErrUnsupportedAttribute, attrID)
	}
}
