package dictionary

import (
	"bytes"
	"encoding/json"
	"os"
	"sort"
)

// Load reads a dictionary from a JSON file. A missing file yields an empty
// dictionary, not an error, so first runs work without any learned state.
func Load(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(Dictionary), nil
		}
		return nil, err
	}

	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// Save writes a dictionary to a JSON file with indentation. Keys are ordered
// longest first, matching the longest-match priority the matcher applies.
func Save(path string, d Dictionary) error {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, k := range keys {
		kb, err := json.Marshal(k)
		if err != nil {
			return err
		}
		vb, err := json.Marshal(d[k])
		if err != nil {
			return err
		}
		buf.WriteString("  ")
		buf.Write(kb)
		buf.WriteString(": ")
		buf.Write(vb)
		if i < len(keys)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	return os.WriteFile(path, buf.Bytes(), 0644)
}
