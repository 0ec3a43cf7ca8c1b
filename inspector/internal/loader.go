package internal

import (
	"bytes"
	stderrors "errors"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/scusemua/chained-hashmap/common/queue"
)

// Loader reads inspector scripts from a filesystem.
type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads the script at path and returns its operations in order.
func (l *Loader) Load(path string) (*queue.Fifo[*Op], error) {
	content, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}

	return ParseScript(content)
}

// ParseScript decodes a JSON array of operations. Comments and trailing commas are permitted.
//
// Numeric values are kept as json.Number so that integers beyond 2^53 are not rounded.
//
// Every operation is validated; if any are invalid, the returned error joins all of their errors.
func ParseScript(content []byte) (*queue.Fifo[*Op], error) {
	var ops []*Op
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(content)))
	decoder.UseNumber()
	if err := decoder.Decode(&ops); err != nil {
		return nil, errors.Wrap(err, "decode script")
	}

	if len(ops) == 0 {
		return nil, ErrEmptyScript
	}

	var errs []error
	fifo := queue.NewFifo[*Op](len(ops))
	for i, op := range ops {
		if op == nil {
			errs = append(errs, errors.Wrapf(ErrInvalidOperation, "operation #%d is null", i))
			continue
		}

		op.Index = i
		if err := op.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}

		fifo.Enqueue(op)
	}

	if len(errs) > 0 {
		return nil, stderrors.Join(errs...)
	}

	return fifo, nil
}
