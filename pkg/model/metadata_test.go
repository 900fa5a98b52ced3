package model

import (
	"errors"
	"testing"

	"github.com/lattice-home/lattice-go/pkg/wire"
)

var testMeta = ClusterMetadata{
	ID:         0x0099,
	Revision:   2,
	FeatureMap: 0x0003,
	Attributes: []AttributeDecl{
		FeatureMapDecl,
		AttributeListDecl,
		ClusterRevisionDecl,
		{ID: 0, Access: AccessRV, Quality: QualityNone},
		{ID: 1, Access: AccessRV, Quality: QualityNone},
	},
}

// newTestWriter returns a writer bound to an arbitrary version snapshot.
func newTestWriter(t *testing.T, attrID uint16) (*wire.AttrDataEncoder, *wire.AttrDataWriter) {
	t.Helper()
	enc := wire.NewAttrDataEncoder(1, uint32(testMeta.ID), attrID, nil)
	w, err := enc.BeginWithDataver(7)
	if err != nil {
		t.Fatalf("BeginWithDataver() error = %v", err)
	}
	if w == nil {
		t.Fatal("BeginWithDataver() returned nil writer without a version filter")
	}
	return enc, w
}

func TestMetadataSupports(t *testing.T) {
	if !testMeta.Supports(1) {
		t.Error("Supports(1) = false, want true")
	}
	if !testMeta.Supports(AttrIDFeatureMap) {
		t.Error("Supports(featureMap) = false, want true")
	}
	if testMeta.Supports(42) {
		t.Error("Supports(42) = true, want false")
	}
}

func TestMetadataReadSystem(t *testing.T) {
	t.Run("FeatureMap", func(t *testing.T) {
		enc, w := newTestWriter(t, AttrIDFeatureMap)
		if err := testMeta.ReadSystem(AttrIDFeatureMap, w); err != nil {
			t.Fatalf("ReadSystem() error = %v", err)
		}
		if err := w.Complete(); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		report, ok := enc.Report()
		if !ok {
			t.Fatal("expected a report")
		}
		var got uint32
		if err := report.DecodeValue(&got); err != nil {
			t.Fatalf("DecodeValue() error = %v", err)
		}
		if got != 0x0003 {
			t.Errorf("featureMap = %#04x, want 0x0003", got)
		}
	})

	t.Run("ClusterRevision", func(t *testing.T) {
		enc, w := newTestWriter(t, AttrIDClusterRevision)
		if err := testMeta.ReadSystem(AttrIDClusterRevision, w); err != nil {
			t.Fatalf("ReadSystem() error = %v", err)
		}
		if err := w.Complete(); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		report, _ := enc.Report()
		var got uint16
		if err := report.DecodeValue(&got); err != nil {
			t.Fatalf("DecodeValue() error = %v", err)
		}
		if got != 2 {
			t.Errorf("clusterRevision = %d, want 2", got)
		}
	})

	t.Run("AttributeList", func(t *testing.T) {
		enc, w := newTestWriter(t, AttrIDAttributeList)
		if err := testMeta.ReadSystem(AttrIDAttributeList, w); err != nil {
			t.Fatalf("ReadSystem() error = %v", err)
		}
		if err := w.Complete(); err != nil {
			t.Fatalf("Complete() error = %v", err)
		}

		report, _ := enc.Report()
		var got []uint16
		if err := report.DecodeValue(&got); err != nil {
			t.Fatalf("DecodeValue() error = %v", err)
		}

		want := []uint16{AttrIDFeatureMap, AttrIDAttributeList, AttrIDClusterRevision, 0, 1}
		if len(got) != len(want) {
			t.Fatalf("attributeList length = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("attributeList[%d] = %#04x, want %#04x", i, got[i], want[i])
			}
		}
	})

	t.Run("UnknownSystemAttribute", func(t *testing.T) {
		_, w := newTestWriter(t, 0xFFF0)
		err := testMeta.ReadSystem(0xFFF0, w)
		if !errors.Is(err, ErrUnsupportedAttribute) {
			t.Errorf("expected ErrUnsupportedAttribute, got %v", err)
		}
	})
}

func TestAccessString(t *testing.T) {
	cases := []struct {
		access Access
		want   string
	}{
		{AccessRV, "RV"},
		{AccessRead | AccessWrite, "RW"},
		{Access(0), "-"},
	}
	for _, tc := range cases {
		if got := tc.access.String(); got != tc.want {
			t.Errorf("Access(%08b).String() = %q, want %q", tc.access, got, tc.want)
		}
	}
}
