package llm

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// SanitizeTables coerces common model slips so a page answer can still validate:
// code fences around the JSON, numeric or null cells, and missing headers.
// It reports which fixes were applied.
func SanitizeTables(raw []byte) ([]byte, []string, error) {
	raw = stripFences(raw)

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, err
	}
	var fixes []string
	tables, _ := m["tables"].([]any)
	if tables == nil {
		m["tables"] = []any{}
		fixes = append(fixes, "tables")
	}
	for i, t := range tables {
		tm, ok := t.(map[string]any)
		if !ok {
			continue
		}
		prefix := "tables[" + strconv.Itoa(i) + "]"
		if h, ok := tm["header"].([]any); ok {
			if coerceCells(h) {
				fixes = append(fixes, prefix+".header")
			}
		} else {
			tm["header"] = []any{}
			fixes = append(fixes, prefix+".header")
		}
		rows, ok := tm["rows"].([]any)
		if !ok {
			tm["rows"] = []any{}
			fixes = append(fixes, prefix+".rows")
			continue
		}
		kept := rows[:0]
		for _, r := range rows {
			cells, ok := r.([]any)
			if !ok {
				fixes = append(fixes, prefix+".rows")
				continue
			}
			if coerceCells(cells) {
				fixes = append(fixes, prefix+".rows")
			}
			kept = append(kept, cells)
		}
		tm["rows"] = kept
		for k := range tm {
			if k != "header" && k != "rows" {
				delete(tm, k)
				fixes = append(fixes, prefix+"."+k)
			}
		}
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, nil, err
	}
	return b, fixes, nil
}

func coerceCells(cells []any) bool {
	changed := false
	for i, c := range cells {
		switch v := c.(type) {
		case string:
		case nil:
			cells[i] = ""
			changed = true
		case float64:
			cells[i] = strconv.FormatFloat(v, 'f', -1, 64)
			changed = true
		case bool:
			cells[i] = strconv.FormatBool(v)
			changed = true
		default:
			b, _ := json.Marshal(v)
			cells[i] = string(b)
			changed = true
		}
	}
	return changed
}

func stripFences(raw []byte) []byte {
	s := bytes.TrimSpace(raw)
	if !bytes.HasPrefix(s, []byte("```")) {
		return s
	}
	str := strings.TrimPrefix(string(s), "```")
	str = strings.TrimPrefix(str, "json")
	str = strings.TrimSuffix(strings.TrimSpace(str), "```")
	return []byte(strings.TrimSpace(str))
}
