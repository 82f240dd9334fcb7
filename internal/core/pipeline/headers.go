package pipeline

import "strconv"

// safeHeaders turns raw header cells into non-empty, pairwise distinct column names.
// A blank cell at position k becomes "Col_k"; a repeated name becomes "name_k",
// with a further "_m" counter if that is taken too. Positions are 1-based.
func safeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, h := range raw {
		pos := strconv.Itoa(i + 1)
		name := cleanText(h)
		if name == "" {
			name = "Col_" + pos
		}
		if _, dup := seen[name]; dup {
			base := name + "_" + pos
			name = base
			for m := 1; ; m++ {
				if _, taken := seen[name]; !taken {
					break
				}
				name = base + "_" + strconv.Itoa(m)
			}
		}
		seen[name] = struct{}{}
		out[i] = name
	}
	return out
}
