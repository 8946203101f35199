package vizconfig

import "strings"

// Column references a graph attribute column whose values are drawn as
// label text. Column lists live in memory only.
type Column struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

func encodeColumns(cols []Column) string {
	ids := make([]string, len(cols))
	for i, c := range cols {
		ids[i] = c.ID
	}
	return strings.Join(ids, ",")
}

func decodeColumns(s string) []Column {
	cols := []Column{}
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			cols = append(cols, Column{ID: id})
		}
	}
	return cols
}
