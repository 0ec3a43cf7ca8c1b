package internal

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
)

// ExportDocument is the document written by an Exporter.
type ExportDocument struct {
	RunId   string                      `json:"run_id,omitempty"`
	Stats   *hashmap.Stats              `json:"stats"`
	Links   []hashmap.Link[string, any] `json:"links"`
	Lookups []Lookup                    `json:"lookups,omitempty"`
}

// Exporter writes the contents of a Table to a filesystem as JSON.
type Exporter struct {
	fs afero.Fs
}

func NewExporter(fs afero.Fs) *Exporter {
	return &Exporter{fs: fs}
}

// Export writes the table's links, in ListOfLinks order, along with its statistics to path.
func (e *Exporter) Export(path string, runId string, table *Table, lookups []Lookup) error {
	doc := &ExportDocument{
		RunId:   runId,
		Stats:   table.Stats(),
		Links:   table.ListOfLinks(),
		Lookups: lookups,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode export")
	}

	if err = afero.WriteFile(e.fs, path, data, os.FileMode(0644)); err != nil {
		return errors.Wrap(err, "write export")
	}

	return nil
}
