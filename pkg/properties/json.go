package properties

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// propertySnapshot mirrors the on-disk JSON layout: dbids are object keys and
// therefore strings.
type propertySnapshot struct {
	Parents    map[string]int64             `json:"parents"`
	Properties map[string]map[string]string `json:"properties"`
}

// Load reads a JSON property snapshot into a Set.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading property snapshot %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing property snapshot %s: %w", path, err)
	}
	return set, nil
}

// Parse parses a JSON property snapshot.
func Parse(data []byte) (*Set, error) {
	var snap propertySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	set := NewSet()
	for key, bag := range snap.Properties {
		dbid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("property dbid %q: %w", key, err)
		}
		for name, value := range bag {
			set.Put(dbid, name, value)
		}
	}
	for key, parent := range snap.Parents {
		dbid, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parent dbid %q: %w", key, err)
		}
		set.SetParent(dbid, parent)
	}
	return set, nil
}
