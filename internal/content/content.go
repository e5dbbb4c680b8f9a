// Package content handles the encoded form of a file's semi-structured
// content tree: decode/encode, schema migration, and null pruning.
package content

import (
	"encoding/json"
	"fmt"
)

// Decode parses encoded content into a tree of nested mappings,
// sequences, and scalars.
func Decode(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	return tree, nil
}

// Encode serializes a content tree. Round-trips any tree produced by
// the relinker.
func Encode(tree map[string]any) ([]byte, error) {
	data, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("content: encode: %w", err)
	}
	return data, nil
}
