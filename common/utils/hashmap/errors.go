package hashmap

import "fmt"

var (
	ErrInvalidCapacity     = fmt.Errorf("capacity must be a positive integer")
	ErrNilHasher           = fmt.Errorf("hash function must not be nil")
	ErrUnknownHashFunction = fmt.Errorf("unknown hash function")
	ErrUninitializedTable  = fmt.Errorf("table was not created with NewChainedHashMap")
)
