// Package wire defines the CBOR wire format for Lattice attribute reads.
//
// Lattice uses CBOR (RFC 8949) with integer keys for efficient encoding.
//
// # Message Types
//
// There are three message types on the read path:
//   - ReadRequest: controller to device, one attribute path per request
//   - ReadResponse: device to controller, a status code answering the request
//   - ReportData: nested in a successful response, one attribute value with
//     its data version
//
// # Versioned Reads
//
// A ReadRequest may carry the data version the requester last saw. The
// AttrDataEncoder compares it against the cluster's current version before
// any encoding happens: on a match the read is answered with zero writes,
// since the requester already holds current data.
//
// # Value Encoding
//
// Each attribute value is exactly one top-level CBOR value, usually an
// array. The AttrDataWriter enforces the single-value contract and bounds
// the encoded size; a read either produces one complete valid value or
// fails with nothing emitted.
package wire
