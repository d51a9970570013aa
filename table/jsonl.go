package table

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSONL serializes the table as one JSON object per line. Every row
// carries every column; null cells serialize as JSON null.
func (t *Table) WriteJSONL(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, row := range t.Rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("failed to write jsonl row: %w", err)
		}
	}
	return nil
}
