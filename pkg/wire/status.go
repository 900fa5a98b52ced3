package wire

// Status represents a read response status code.
type Status uint8

const (
	// StatusSuccess indicates the read completed successfully.
	StatusSuccess Status = 0

	// StatusFailure indicates a generic failure.
	StatusFailure Status = 1

	// StatusUnsupportedEndpoint indicates the endpoint doesn't exist.
	StatusUnsupportedEndpoint Status = 2

	// StatusUnsupportedCluster indicates the cluster doesn't exist on the endpoint.
	StatusUnsupportedCluster Status = 3

	// StatusUnsupportedAttribute indicates the attribute doesn't exist on the cluster.
	StatusUnsupportedAttribute Status = 4

	// StatusResourceExhausted indicates the response exceeded encoding capacity.
	StatusResourceExhausted Status = 5

	// StatusInvalidRequest indicates a malformed request.
	StatusInvalidRequest Status = 6
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusFailure:
		return "FAILURE"
	case StatusUnsupportedEndpoint:
		return "UNSUPPORTED_ENDPOINT"
	case StatusUnsupportedCluster:
		return "UNSUPPORTED_CLUSTER"
	case StatusUnsupportedAttribute:
		return "UNSUPPORTED_ATTRIBUTE"
	case StatusResourceExhausted:
		return "RESOURCE_EXHAUSTED"
	case StatusInvalidRequest:
		return "INVALID_REQUEST"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}
