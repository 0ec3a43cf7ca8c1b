package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Scusemua/go-utils/config"
	"github.com/goccy/go-json"
	"github.com/xyproto/env/v2"

	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
)

const (
	DefaultCapacity     = 10
	DefaultHashFunction = hashmap.HashPositionWeightedSum

	CapacityEnvVar     = "CHAINMAP_CAPACITY"
	HashFunctionEnvVar = "CHAINMAP_HASH"
)

var (
	ErrNoScript      = errors.New("no script specified")
	ErrInvalidResize = errors.New("resize target must not be negative")
)

type InspectorOptions struct {
	config.LoggerOptions `yaml:",inline" json:"logger_options"`
	Script               string `name:"script" description:"Path to a JSON (comments allowed) file containing the operations to apply." json:"script" yaml:"script"`
	HashFunction         string `name:"hash" description:"Hash function used to index keys: 'sum', 'weighted', 'xxhash' or 'siphash'." json:"hash" yaml:"hash"`
	Export               string `name:"export" description:"If set, the final links and statistics are written to this path as JSON." json:"export" yaml:"export"`
	Capacity             int    `name:"capacity" description:"Initial number of buckets." json:"capacity" yaml:"capacity"`
	ResizeTo             int    `name:"resize" description:"If positive, the table is resized to this many buckets once the script completes." json:"resize" yaml:"resize"`

	// PrettyPrintOptions, when true, instructs the inspector to pretty-print
	// the InspectorOptions struct when the program first begins running.
	PrettyPrintOptions bool `name:"pretty_print_options" json:"pretty_print_options" yaml:"pretty_print_options"`
}

// ApplyDefaults populates the capacity and hash function from the environment, falling back to
// DefaultCapacity and DefaultHashFunction.
func (o *InspectorOptions) ApplyDefaults() {
	o.Capacity = env.Int(CapacityEnvVar, DefaultCapacity)
	o.HashFunction = env.Str(HashFunctionEnvVar, DefaultHashFunction)
}

func (o *InspectorOptions) Validate() error {
	if err := o.LoggerOptions.Validate(); err != nil {
		return err
	}

	var errs []error
	if o.Script == "" {
		errs = append(errs, ErrNoScript)
	}

	if o.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", hashmap.ErrInvalidCapacity, o.Capacity))
	}

	if o.ResizeTo < 0 {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidResize, o.ResizeTo))
	}

	if _, err := hashmap.HashFunctionByName(o.HashFunction); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (o *InspectorOptions) String() string {
	m, err := json.Marshal(o)
	if err != nil {
		panic(err)
	}

	return string(m)
}

// PrettyString is the same as String, except that PrettyString calls json.MarshalIndent instead of json.Marshal.
func (o *InspectorOptions) PrettyString(indentSize int) string {
	indentBuilder := strings.Builder{}
	for i := 0; i < indentSize; i++ {
		indentBuilder.WriteString(" ")
	}

	m, err := json.MarshalIndent(o, "", indentBuilder.String())
	if err != nil {
		panic(err)
	}

	return string(m)
}
