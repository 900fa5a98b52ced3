package descriptor

import (
	"testing"

	"github.com/lattice-home/lattice-go/pkg/model"
)

func TestStandardMatcher(t *testing.T) {
	m := StandardMatcher{}

	cases := []struct {
		owner, candidate model.EndpointID
		want             bool
	}{
		{0, 1, true},
		{0, 2, true},
		{0, 0, false}, // never describes itself
		{1, 0, false}, // non-root owners report nothing
		{1, 2, false},
		{2, 1, false},
	}

	for _, tc := range cases {
		if got := m.Describe(tc.owner, tc.candidate); got != tc.want {
			t.Errorf("Describe(%d, %d) = %v, want %v", tc.owner, tc.candidate, got, tc.want)
		}
	}
}

func TestAggregatorMatcher(t *testing.T) {
	m := AggregatorMatcher{}

	cases := []struct {
		owner, candidate model.EndpointID
		want             bool
	}{
		{0, 1, true},
		{0, 2, true},
		{0, 0, false},
		{1, 2, true}, // peers describe each other
		{2, 1, true},
		{1, 1, false}, // never describes itself
		{1, 0, false}, // the root is never a part
		{2, 0, false},
	}

	for _, tc := range cases {
		if got := m.Describe(tc.owner, tc.candidate); got != tc.want {
			t.Errorf("Describe(%d, %d) = %v, want %v", tc.owner, tc.candidate, got, tc.want)
		}
	}
}

func TestAttributeFromID(t *testing.T) {
	for id := uint16(0); id <= 3; id++ {
		attr, err := AttributeFromID(id)
		if err != nil {
			t.Errorf("AttributeFromID(%d) error = %v", id, err)
		}
		if uint16(attr) != id {
			t.Errorf("AttributeFromID(%d) = %d", id, attr)
		}
	}

	for _, id := range []uint16{4, 5, 100, 0xFFFE} {
		if _, err := AttributeFromID(id); err == nil {
			t.Errorf("AttributeFromID(%d) accepted an undeclared id", id)
		}
	}
}

func TestAttributeString(t *testing.T) {
	cases := map[Attribute]string{
		AttrDeviceTypeList: "DeviceTypeList",
		AttrServerList:     "ServerList",
		AttrClientList:     "ClientList",
		AttrPartsList:      "PartsList",
		Attribute(9):       "Unknown",
	}
	for attr, want := range cases {
		if got := attr.String(); got != want {
			t.Errorf("Attribute(%d).String() = %q, want %q", attr, got, want)
		}
	}
}
