package llm

// TableGrid is the shape the model returns for one table.
type TableGrid struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// PageTables is the model's answer for one page image.
type PageTables struct {
	Tables []TableGrid `json:"tables"`
}

// Grid flattens the table to header-first rows.
func (t TableGrid) Grid() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	if len(t.Header) > 0 {
		out = append(out, t.Header)
	}
	return append(out, t.Rows...)
}
