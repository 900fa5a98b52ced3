package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ReadRequest addresses one attribute for reading.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32, non-zero
//	  2: endpointId,   // uint16
//	  3: clusterId,    // uint32
//	  4: attributeId,  // uint16
//	  5: dataVersion   // uint32, optional: last version seen by requester
//	}
type ReadRequest struct {
	MessageID   uint32  `cbor:"1,keyasint"`
	EndpointID  uint16  `cbor:"2,keyasint"`
	ClusterID   uint32  `cbor:"3,keyasint"`
	AttributeID uint16  `cbor:"4,keyasint"`
	DataVersion *uint32 `cbor:"5,keyasint,omitempty"`
}

// Validate checks if the request is valid.
func (r *ReadRequest) Validate() error {
	if r.MessageID == 0 {
		return fmt.Errorf("messageId 0 is reserved")
	}
	return nil
}

// ReportData carries one attribute value with the data version it was
// read under.
//
// CBOR encoding:
//
//	{
//	  1: endpointId,   // uint16
//	  2: clusterId,    // uint32
//	  3: attributeId,  // uint16
//	  4: dataVersion,  // uint32
//	  5: value         // attribute value, pre-encoded
//	}
type ReportData struct {
	EndpointID  uint16          `cbor:"1,keyasint"`
	ClusterID   uint32          `cbor:"2,keyasint"`
	AttributeID uint16          `cbor:"3,keyasint"`
	DataVersion uint32          `cbor:"4,keyasint"`
	Value       cbor.RawMessage `cbor:"5,keyasint"`
}

// DecodeValue decodes the report's value into v.
func (r *ReportData) DecodeValue(v any) error {
	return Unmarshal(r.Value, v)
}

// ReadResponse answers a ReadRequest.
//
// On success with a nil Report the requester's data version matched the
// cluster's current version: nothing was encoded because the requester
// already holds current data.
//
// CBOR encoding:
//
//	{
//	  1: messageId,    // uint32: matches request
//	  2: status,       // uint8: 0=success, or error code
//	  3: report        // ReportData, present only when data was encoded
//	}
type ReadResponse struct {
	MessageID uint32      `cbor:"1,keyasint"`
	Status    Status      `cbor:"2,keyasint"`
	Report    *ReportData `cbor:"3,keyasint,omitempty"`
}

// IsSuccess returns true if the response indicates success.
func (r *ReadResponse) IsSuccess() bool {
	return r.Status.IsSuccess()
}
