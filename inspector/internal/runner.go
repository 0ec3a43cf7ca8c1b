package internal

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/scusemua/chained-hashmap/common/queue"
	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
)

// Table is the map type that scripts operate on.
type Table = hashmap.ChainedHashMap[string, any]

// Lookup records the outcome of a "get" operation.
type Lookup struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
	Found bool   `json:"found"`
}

// Runner applies script operations to a Table.
type Runner struct {
	table  *Table
	logger *zap.Logger
	runId  string
}

func NewRunner(table *Table, logger *zap.Logger) *Runner {
	runId := uuid.NewString()
	return &Runner{
		table:  table,
		logger: logger.With(zap.String("run_id", runId)),
		runId:  runId,
	}
}

// RunId returns the identifier attached to every log line emitted by the Runner.
func (r *Runner) RunId() string {
	return r.runId
}

// Run drains ops, applying each one to the table in order, and returns the result of every "get".
//
// Run stops at the first operation that fails. Operations applied before the failure are not rolled back.
func (r *Runner) Run(ops *queue.Fifo[*Op]) ([]Lookup, error) {
	r.logger.Info("Running script.", zap.Int("num_operations", ops.Len()),
		zap.Int("capacity", r.table.Capacity()), zap.Int("size", r.table.Size()))

	lookups := make([]Lookup, 0)
	applied := 0
	for op, ok := ops.Dequeue(); ok; op, ok = ops.Dequeue() {
		lookup, err := r.apply(op)
		if err != nil {
			r.logger.Error("Operation failed.", zap.Int("index", op.Index), zap.String("operation", op.String()), zap.Error(err))
			return lookups, errors.Wrapf(err, "operation #%d (%s)", op.Index, op.Kind)
		}

		if lookup != nil {
			lookups = append(lookups, *lookup)
		}
		applied += 1
	}

	r.logger.Info("Script complete.", zap.Int("applied", applied), zap.Int("size", r.table.Size()),
		zap.Int("capacity", r.table.Capacity()), zap.Float64("load", r.table.TableLoad()))

	return lookups, nil
}

func (r *Runner) apply(op *Op) (*Lookup, error) {
	r.logger.Debug("Applying operation.", zap.Int("index", op.Index), zap.String("operation", op.String()))

	switch op.Kind {
	case OpPut:
		r.table.Put(*op.Key, op.Value)
	case OpRemove:
		if !r.table.Remove(*op.Key) {
			r.logger.Debug("Key not present.", zap.String("key", *op.Key))
		}
	case OpGet:
		value, found := r.table.Get(*op.Key)
		return &Lookup{Key: *op.Key, Value: value, Found: found}, nil
	case OpResize:
		if err := r.table.ResizeTable(op.Capacity); err != nil {
			return nil, err
		}
	case OpClear:
		r.table.Clear()
	default:
		return nil, fmt.Errorf("%w: unknown kind \"%s\"", ErrInvalidOperation, op.Kind)
	}

	return nil, nil
}
