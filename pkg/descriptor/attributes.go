package descriptor

import (
	"fmt"

	"github.com/lattice-home/lattice-go/pkg/model"
)

// ClusterID is the Descriptor cluster identifier.
const ClusterID model.ClusterID = 0x001D

// Attribute enumerates the Descriptor cluster's attributes.
// The numeric ids are wire-visible and immutable.
type Attribute uint16

const (
	// AttrDeviceTypeList is the device-type list attribute.
	AttrDeviceTypeList Attribute = 0

	// AttrServerList is the hosted server cluster list attribute.
	AttrServerList Attribute = 1

	// AttrClientList is the hosted client cluster list attribute.
	AttrClientList Attribute = 2

	// AttrPartsList is the composing-endpoint list attribute.
	AttrPartsList Attribute = 3
)

// AttributeFromID maps a wire attribute id to the enumeration.
// Ids outside {0,1,2,3} are a protocol-level error, never a silent default.
func AttributeFromID(id uint16) (Attribute, error) {
	switch Attribute(id) {
	case AttrDeviceTypeList, AttrServerList, AttrClientList, AttrPartsList:
		return Attribute(id), nil
	default:
		return 0, fmt.Errorf("%w: descriptor attribute %#04x", model.ErrUnsupportedAttribute, id)
	}
}

// String returns the attribute name.
func (a Attribute) String() string {
	switch a {
	case AttrDeviceTypeList:
		return "DeviceTypeList"
	case AttrServerList:
		return "ServerList"
	case AttrClientList:
		return "ClientList"
	case AttrPartsList:
		return "PartsList"
	default:
		return "Unknown"
	}
}

// Metadata is the immutable Descriptor cluster declaration.
var Metadata = model.ClusterMetadata{
	ID:         ClusterID,
	Revision:   1,
	FeatureMap: 0,
	Attributes: []model.AttributeDecl{
		model.FeatureMapDecl,
		model.AttributeListDecl,
		model.ClusterRevisionDecl,
		{ID: uint16(AttrDeviceTypeList), Access: model.AccessRV, Quality: model.QualityNone},
		{ID: uint16(AttrServerList), Access: model.AccessRV, Quality: model.QualityNone},
		{ID: uint16(AttrClientList), Access: model.AccessRV, Quality: model.QualityNone},
		{ID: uint16(AttrPartsList), Access: model.AccessRV, Quality: model.QualityNone},
	},
}
