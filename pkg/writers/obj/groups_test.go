package obj

import (
	"testing"

	"github.com/Imerso3D/forge-convert-utils/pkg/properties"
	"github.com/Imerso3D/forge-convert-utils/pkg/scene"
)

func noLog(string) {}

func TestBuildGroupsFallbackKey(t *testing.T) {
	model := &scene.Model{
		Nodes: []scene.Node{&scene.ObjectNode{DBID: 99, Geometry: 0}},
	}

	regular, openings := buildGroups(model, nil, noLog)

	if len(openings.ordered) != 0 {
		t.Errorf("no database means no openings, got %d", len(openings.ordered))
	}
	if len(regular.ordered) != 1 || regular.ordered[0].key != "dbid-99" {
		t.Fatalf("expected single dbid-99 group, got %+v", regular.ordered)
	}
}

func TestBuildGroupsFirstSeenOrder(t *testing.T) {
	db := properties.NewSet()
	db.Put(1, "IFC:GLOBALID", "b")
	db.Put(2, "IFC:GLOBALID", "a")
	db.Put(3, "IFC:GLOBALID", "b")

	model := &scene.Model{
		Nodes: []scene.Node{
			&scene.ObjectNode{DBID: 1, Geometry: 0},
			&scene.ObjectNode{DBID: 2, Geometry: 0},
			&scene.ObjectNode{DBID: 3, Geometry: 0},
		},
	}

	regular, _ := buildGroups(model, db, noLog)

	if len(regular.ordered) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(regular.ordered))
	}
	// "b" was seen first even though "a" sorts before it.
	if regular.ordered[0].key != "b" || regular.ordered[1].key != "a" {
		t.Errorf("group order: got [%s, %s], want [b, a]", regular.ordered[0].key, regular.ordered[1].key)
	}
	if got := regular.ordered[0].nodes; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("group b nodes: got %v, want [0 2]", got)
	}
}

func TestBuildGroupsCandidateKeyPrecedence(t *testing.T) {
	// Element:IfcGUID on the node itself loses to IFC:GLOBALID anywhere in
	// the ancestor chain.
	db := properties.NewSet()
	db.SetParent(2, 1)
	db.Put(1, "IFC:GLOBALID", "ancestor-guid")
	db.Put(2, "Element:IfcGUID", "own-guid")

	model := &scene.Model{
		Nodes: []scene.Node{&scene.ObjectNode{DBID: 2, Geometry: 0}},
	}

	regular, _ := buildGroups(model, db, noLog)

	if regular.ordered[0].key != "ancestor-guid" {
		t.Errorf("got key %q, want ancestor-guid", regular.ordered[0].key)
	}
}

func TestBuildGroupsOpeningRegardlessOfKey(t *testing.T) {
	db := properties.NewSet()
	db.Put(1, "IFC:GLOBALID", "shared")
	db.Put(2, "IFC:GLOBALID", "shared")
	db.Put(2, "Element:IfcExportAs", "IfcOpeningElement")

	model := &scene.Model{
		Nodes: []scene.Node{
			&scene.ObjectNode{DBID: 1, Geometry: 0},
			&scene.ObjectNode{DBID: 2, Geometry: 0},
		},
	}

	regular, openings := buildGroups(model, db, noLog)

	if len(regular.ordered) != 1 || len(regular.ordered[0].nodes) != 1 {
		t.Errorf("regular bucket wrong: %+v", regular.ordered)
	}
	if len(openings.ordered) != 1 || openings.ordered[0].key != "shared" {
		t.Errorf("opening bucket wrong: %+v", openings.ordered)
	}
}

func TestBuildGroupsEmptyPropertyValueFallsBack(t *testing.T) {
	db := properties.NewSet()
	db.Put(1, "IFC:GLOBALID", "")

	model := &scene.Model{
		Nodes: []scene.Node{&scene.ObjectNode{DBID: 1, Geometry: 0}},
	}

	regular, _ := buildGroups(model, db, noLog)

	if regular.ordered[0].key != "dbid-1" {
		t.Errorf("empty property value should fall back to dbid key, got %q", regular.ordered[0].key)
	}
}

func TestFormatCoord(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		want      string
	}{
		{0, 4, "0.0000"},
		{1.23456789, 4, "1.2346"},
		{-0.30480000000000002, 4, "-0.3048"},
		{0.000001, 4, "0.0000"},
		{1e6, 4, "1000000.0000"},
		{0.567, 2, "0.57"},
		{-1, 2, "-1.00"},
	}

	for _, tc := range cases {
		if got := formatCoord(tc.value, tc.precision); got != tc.want {
			t.Errorf("formatCoord(%v, %d): got %q, want %q", tc.value, tc.precision, got, tc.want)
		}
	}
}
