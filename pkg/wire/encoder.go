package wire

import (
	"errors"
	"fmt"
)

// Encoder errors.
var (
	// ErrWriterOverflow indicates the encoded value exceeded the writer's
	// capacity. The report is discarded; nothing partial is emitted.
	ErrWriterOverflow = errors.New("attribute writer capacity exhausted")

	// ErrWriterState indicates a write sequence violating the single-value
	// contract, such as a second top-level value or an unclosed array.
	ErrWriterState = errors.New("invalid attribute writer state")
)

// DefaultMaxValueBytes bounds the encoded size of one attribute value.
const DefaultMaxValueBytes = 1024

// AttrDataEncoder gates attribute encoding on the requester's last-seen
// data version and hands out at most one writer per read.
//
// One encoder serves exactly one read call.
type AttrDataEncoder struct {
	endpointID  uint16
	clusterID   uint32
	attributeID uint16

	// dataVersion is the version the requester last saw; nil always encodes.
	dataVersion *uint32

	maxBytes int
	writer   *AttrDataWriter
}

// NewAttrDataEncoder creates an encoder for one attribute read.
// dataVersion is the requester's last-seen cluster version, or nil to
// encode unconditionally.
func NewAttrDataEncoder(endpointID uint16, clusterID uint32, attributeID uint16, dataVersion *uint32) *AttrDataEncoder {
	return &AttrDataEncoder{
		endpointID:  endpointID,
		clusterID:   clusterID,
		attributeID: attributeID,
		dataVersion: dataVersion,
		maxBytes:    DefaultMaxValueBytes,
	}
}

// SetMaxValueBytes overrides the encoded-size bound for this read.
func (e *AttrDataEncoder) SetMaxValueBytes(n int) {
	e.maxBytes = n
}

// BeginWithDataver compares the cluster's current data version against the
// requester's last-seen version. On a match it returns (nil, nil): the
// requester already holds current data and nothing must be written.
// Otherwise it returns a writer bound to the current version snapshot.
func (e *AttrDataEncoder) BeginWithDataver(current uint32) (*AttrDataWriter, error) {
	if e.writer != nil {
		return nil, fmt.Errorf("%w: encoder already begun", ErrWriterState)
	}
	if e.dataVersion != nil && *e.dataVersion == current {
		return nil, nil
	}

	e.writer = &AttrDataWriter{
		endpointID:  e.endpointID,
		clusterID:   e.clusterID,
		attributeID: e.attributeID,
		dataVersion: current,
		maxBytes:    e.maxBytes,
	}
	return e.writer, nil
}

// Report returns the finalized report, or false if the read was skipped
// or never completed.
func (e *AttrDataEncoder) Report() (*ReportData, bool) {
	if e.writer == nil || e.writer.report == nil {
		return nil, false
	}
	return e.writer.report, true
}

// AttrDataWriter collects exactly one top-level attribute value and
// finalizes it into a ReportData frame.
//
// The value is either a single scalar (WriteValue) or a single array
// opened with StartArray and closed with EndArray. Elements keep their
// write order. Complete encodes the value; until Complete succeeds no
// output is considered valid.
type AttrDataWriter struct {
	endpointID  uint16
	clusterID   uint32
	attributeID uint16
	dataVersion uint32
	maxBytes    int

	inArray  bool
	haveVal  bool
	scalar   any
	elements []any

	report *ReportData
}

// DataVersion returns the version snapshot this writer is bound to.
func (w *AttrDataWriter) DataVersion() uint32 {
	return w.dataVersion
}

// StartArray opens the top-level array value.
func (w *AttrDataWriter) StartArray() error {
	if w.inArray || w.haveVal {
		return fmt.Errorf("%w: value already started", ErrWriterState)
	}
	w.inArray = true
	w.elements = []any{}
	return nil
}

// EndArray closes the top-level array value.
func (w *AttrDataWriter) EndArray() error {
	if !w.inArray {
		return fmt.Errorf("%w: no open array", ErrWriterState)
	}
	w.inArray = false
	w.haveVal = true
	return nil
}

// WriteUint16 appends an unsigned 16-bit array element.
func (w *AttrDataWriter) WriteUint16(v uint16) error {
	return w.writeElement(v)
}

// WriteUint32 appends an unsigned 32-bit array element.
func (w *AttrDataWriter) WriteUint32(v uint32) error {
	return w.writeElement(v)
}

// WriteStruct appends a struct array element.
func (w *AttrDataWriter) WriteStruct(v any) error {
	return w.writeElement(v)
}

// WriteValue writes a single scalar as the top-level value.
func (w *AttrDataWriter) WriteValue(v any) error {
	if w.inArray || w.haveVal {
		return fmt.Errorf("%w: value already started", ErrWriterState)
	}
	w.scalar = v
	w.haveVal = true
	return nil
}

func (w *AttrDataWriter) writeElement(v any) error {
	if !w.inArray {
		return fmt.Errorf("%w: element outside array", ErrWriterState)
	}
	w.elements = append(w.elements, v)
	return nil
}

// Complete encodes the collected value and finalizes the report frame.
func (w *AttrDataWriter) Complete() error {
	if w.inArray {
		return fmt.Errorf("%w: unclosed array", ErrWriterState)
	}
	if !w.haveVal {
		return fmt.Errorf("%w: no value written", ErrWriterState)
	}
	if w.report != nil {
		return fmt.Errorf("%w: already completed", ErrWriterState)
	}

	var value any
	if w.elements != nil {
		value = w.elements
	} else {
		value = w.scalar
	}

	encoded, err := Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode attribute value: %w", err)
	}
	if len(encoded) > w.maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrWriterOverflow, len(encoded), w.maxBytes)
	}

	w.report = &ReportData{
		EndpointID:  w.endpointID,
		ClusterID:   w.clusterID,
		AttributeID: w.attributeID,
		DataVersion: w.dataVersion,
		Value:       encoded,
	}
	return nil
}
