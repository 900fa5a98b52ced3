package wire

import (
	"testing"
)

func TestReadRequestRoundTrip(t *testing.T) {
	known := uint32(0xDEADBEEF)
	req := &ReadRequest{
		MessageID:   42,
		EndpointID:  1,
		ClusterID:   0x001D,
		AttributeID: 3,
		DataVersion: &known,
	}

	data, err := EncodeReadRequest(req)
	if err != nil {
		t.Fatalf("EncodeReadRequest() error = %v", err)
	}

	got, err := DecodeReadRequest(data)
	if err != nil {
		t.Fatalf("DecodeReadRequest() error = %v", err)
	}

	if got.MessageID != 42 || got.EndpointID != 1 || got.ClusterID != 0x001D || got.AttributeID != 3 {
		t.Errorf("decoded request = %+v", got)
	}
	if got.DataVersion == nil || *got.DataVersion != known {
		t.Errorf("DataVersion = %v, want %d", got.DataVersion, known)
	}
}

func TestReadRequestOmitsDataVersion(t *testing.T) {
	req := &ReadRequest{MessageID: 1, EndpointID: 0, ClusterID: 0x001D, AttributeID: 0}

	data, err := EncodeReadRequest(req)
	if err != nil {
		t.Fatalf("EncodeReadRequest() error = %v", err)
	}

	got, err := DecodeReadRequest(data)
	if err != nil {
		t.Fatalf("DecodeReadRequest() error = %v", err)
	}
	if got.DataVersion != nil {
		t.Errorf("DataVersion = %v, want nil", got.DataVersion)
	}
}

func TestReadRequestValidate(t *testing.T) {
	req := &ReadRequest{MessageID: 0}
	if err := req.Validate(); err == nil {
		t.Error("Validate() accepted messageId 0")
	}
	if _, err := EncodeReadRequest(req); err == nil {
		t.Error("EncodeReadRequest() accepted messageId 0")
	}
}

func TestReadResponseRoundTrip(t *testing.T) {
	value, err := Marshal([]uint16{1, 2})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	resp := &ReadResponse{
		MessageID: 7,
		Status:    StatusSuccess,
		Report: &ReportData{
			EndpointID:  0,
			ClusterID:   0x001D,
			AttributeID: 3,
			DataVersion: 99,
			Value:       value,
		},
	}

	data, err := EncodeReadResponse(resp)
	if err != nil {
		t.Fatalf("EncodeReadResponse() error = %v", err)
	}

	got, err := DecodeReadResponse(data)
	if err != nil {
		t.Fatalf("DecodeReadResponse() error = %v", err)
	}

	if !got.IsSuccess() {
		t.Errorf("Status = %s, want SUCCESS", got.Status)
	}
	if got.Report == nil {
		t.Fatal("Report = nil, want report frame")
	}
	if got.Report.DataVersion != 99 {
		t.Errorf("DataVersion = %d, want 99", got.Report.DataVersion)
	}

	var parts []uint16
	if err := got.Report.DecodeValue(&parts); err != nil {
		t.Fatalf("DecodeValue() error = %v", err)
	}
	if len(parts) != 2 || parts[0] != 1 || parts[1] != 2 {
		t.Errorf("decoded parts = %v, want [1 2]", parts)
	}
}

func TestReadResponseSkipHasNoReport(t *testing.T) {
	resp := &ReadResponse{MessageID: 8, Status: StatusSuccess}

	data, err := EncodeReadResponse(resp)
	if err != nil {
		t.Fatalf("EncodeReadResponse() error = %v", err)
	}

	got, err := DecodeReadResponse(data)
	if err != nil {
		t.Fatalf("DecodeReadResponse() error = %v", err)
	}
	if got.Report != nil {
		t.Errorf("Report = %+v, want nil", got.Report)
	}
}

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusSuccess, "SUCCESS"},
		{StatusUnsupportedAttribute, "UNSUPPORTED_ATTRIBUTE"},
		{StatusResourceExhausted, "RESOURCE_EXHAUSTED"},
		{Status(200), "UNKNOWN"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal([]uint16{1, 2}, []uint16{1, 2}) {
		t.Error("Equal() = false for identical values")
	}
	if Equal([]uint16{1, 2}, []uint16{2, 1}) {
		t.Error("Equal() = true for different values")
	}
}
