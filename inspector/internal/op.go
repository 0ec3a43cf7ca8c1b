package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

type OpKind string

const (
	OpPut    OpKind = "put"
	OpRemove OpKind = "remove"
	OpGet    OpKind = "get"
	OpResize OpKind = "resize"
	OpClear  OpKind = "clear"
)

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrEmptyScript      = errors.New("script contains no operations")
)

// Op is a single step of an inspector script.
type Op struct {
	Kind     OpKind  `json:"op"`
	Key      *string `json:"key,omitempty"`
	Value    any     `json:"value,omitempty"`
	Capacity int     `json:"capacity,omitempty"`

	// Index is the position of the Op within its script.
	Index int `json:"-"`
}

// Validate checks that the Op carries the fields its kind needs.
func (op *Op) Validate() error {
	switch op.Kind {
	case OpPut, OpRemove, OpGet:
		if op.Key == nil {
			return errors.Wrapf(ErrInvalidOperation, "operation #%d (%s) is missing a key", op.Index, op.Kind)
		}
	case OpResize:
		if op.Capacity <= 0 {
			return errors.Wrapf(ErrInvalidOperation, "operation #%d (%s) has non-positive capacity %d", op.Index, op.Kind, op.Capacity)
		}
	case OpClear:
	default:
		return errors.Wrapf(ErrInvalidOperation, "operation #%d has unknown kind \"%s\"", op.Index, op.Kind)
	}

	return nil
}

func (op *Op) String() string {
	switch op.Kind {
	case OpPut:
		return fmt.Sprintf("put(%q, %v)", *op.Key, op.Value)
	case OpRemove, OpGet:
		return fmt.Sprintf("%s(%q)", op.Kind, *op.Key)
	case OpResize:
		return fmt.Sprintf("resize(%d)", op.Capacity)
	default:
		return string(op.Kind) + "()"
	}
}
