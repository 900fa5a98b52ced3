package log

import "time"

// Event represents a protocol log event on the read path.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Session uniquely identifies the server session (UUID).
	Session string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Attribute path of the event, where applicable.
	EndpointID  uint16 `cbor:"4,keyasint,omitempty"`
	ClusterID   uint32 `cbor:"5,keyasint,omitempty"`
	AttributeID uint16 `cbor:"6,keyasint,omitempty"`

	// DataVersion is the cluster version a report was encoded under.
	DataVersion uint32 `cbor:"7,keyasint,omitempty"`

	// Size is the encoded value size in bytes, for report events.
	Size int `cbor:"8,keyasint,omitempty"`

	// Status is the wire status name, for completed reads.
	Status string `cbor:"9,keyasint,omitempty"`

	// Error is the error message, for error events.
	Error string `cbor:"10,keyasint,omitempty"`
}

// Kind classifies the event type.
type Kind uint8

const (
	// KindRead indicates an incoming attribute read.
	KindRead Kind = 0
	// KindReport indicates an emitted attribute report.
	KindReport Kind = 1
	// KindSkip indicates a version-gated read answered with zero writes.
	KindSkip Kind = 2
	// KindChange indicates a consumed cluster change signal.
	KindChange Kind = 3
	// KindError indicates a failed read.
	KindError Kind = 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRead:
		return "READ"
	case KindReport:
		return "REPORT"
	case KindSkip:
		return "SKIP"
	case KindChange:
		return "CHANGE"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
