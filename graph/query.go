package graph

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// blockJSON is the flat projection of a block the query language sees.
// Children are flattened to top-level entries, so a filter matches every
// block of the graph exactly once.
type blockJSON struct {
	ID         string            `json:"id"`
	Content    string            `json:"content"`
	Properties map[string]string `json:"properties"`
}

// queryLanguage evaluates JSONPath expressions, including filter
// expressions like $[?(@.properties["type"] == "account")].
var queryLanguage = gval.Full(jsonpath.Language())

// queryByProperty runs a property-equality JSONPath filter over the
// JSON projection of all blocks in the given pages and returns the
// matching live blocks, in document order.
func queryByProperty(pages []*Page, key, value string) ([]*Block, error) {
	var flat []*Block
	for _, p := range pages {
		walk(p.Blocks, func(b *Block) { flat = append(flat, b) })
	}

	projection := make([]blockJSON, 0, len(flat))
	for _, b := range flat {
		props := b.Properties
		if props == nil {
			props = map[string]string{}
		}
		projection = append(projection, blockJSON{ID: b.ID, Content: b.Content, Properties: props})
	}

	raw, err := json.Marshal(projection)
	if err != nil {
		return nil, fmt.Errorf("could not project graph for query: %w", err)
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return nil, fmt.Errorf("could not project graph for query: %w", err)
	}

	path := fmt.Sprintf(`$[?(@.properties[%q] == %q)]`, key, value)
	jval, err := queryLanguage.Evaluate(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("query %q failed: %w", path, err)
	}

	// jsonpath is never clear about whether it returns a list or a single
	// answer: normalize to a list.
	matches, ok := jval.([]any)
	if !ok {
		matches = []any{jval}
	}

	ids := make(map[string]bool, len(matches))
	for _, m := range matches {
		obj, ok := m.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := obj["id"].(string); ok {
			ids[id] = true
		}
	}

	var results []*Block
	for _, b := range flat {
		if ids[b.ID] {
			results = append(results, b)
		}
	}
	return results, nil
}
