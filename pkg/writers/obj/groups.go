package obj

import (
	"fmt"

	"github.com/Imerso3D/forge-convert-utils/pkg/properties"
	"github.com/Imerso3D/forge-convert-utils/pkg/scene"
)

// Property keys driving classification and grouping.
const (
	openingPropertyKey   = "Element:IfcExportAs"
	openingPropertyValue = "IfcOpeningElement"
)

// groupKeyCandidates is the candidate-key precedence for deriving a stable
// external identifier. The whole ancestor chain is searched for the first
// key before the second is tried.
var groupKeyCandidates = []string{"IFC:GLOBALID", "Element:IfcGUID"}

// group is one output object: the node indices sharing a group key, in
// first-seen order.
type group struct {
	key   string
	nodes []int
}

// groupSet keeps groups in insertion order. An ordered slice is used for
// iteration because Go maps randomize key order between runs; the map is
// only a lookup index into the slice.
type groupSet struct {
	ordered []*group
	index   map[string]*group
}

func newGroupSet() *groupSet {
	return &groupSet{index: make(map[string]*group)}
}

func (s *groupSet) add(key string, nodeIndex int) {
	g, ok := s.index[key]
	if !ok {
		g = &group{key: key}
		s.index[key] = g
		s.ordered = append(s.ordered, g)
	}
	g.nodes = append(g.nodes, nodeIndex)
}

// buildGroups classifies every object node as regular or opening and buckets
// it under its group key. A single forward pass over the scene, so bucket
// contents and order are deterministic for a given scene and database. A nil
// database yields an empty property bag for every node.
func buildGroups(sc scene.Scene, db properties.Database, log func(string)) (regular, openings *groupSet) {
	regular = newGroupSet()
	openings = newGroupSet()

	for i := 0; i < sc.NodeCount(); i++ {
		node, ok := sc.Node(i).(*scene.ObjectNode)
		if !ok {
			log(fmt.Sprintf("node %d: skipping %s node", i, sc.Node(i).Kind()))
			continue
		}

		opening := false
		key := ""
		if db != nil {
			opening = db.GetProperties(node.DBID)[openingPropertyKey] == openingPropertyValue
			if value, found := db.FindPropertyRecursive(node.DBID, groupKeyCandidates); found && value != "" {
				key = value
			}
		}
		if key == "" {
			key = fmt.Sprintf("dbid-%d", node.DBID)
		}

		if opening {
			openings.add(key, i)
		} else {
			regular.add(key, i)
		}
	}

	return regular, openings
}
