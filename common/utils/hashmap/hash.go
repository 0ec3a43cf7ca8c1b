package hashmap

import (
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=hash.go -destination=mock_hashmap/hash.go

const (
	HashSumOfCodes          = "sum"
	HashPositionWeightedSum = "weighted"
	HashXXHash              = "xxhash"
	HashSipHash             = "siphash"
)

// Hasher maps a key to a non-negative integer. Implementations must be deterministic.
type Hasher[K any] interface {
	Hash(key K) int
}

// HashFunc adapts an ordinary function to the Hasher interface.
type HashFunc[K any] func(key K) int

func (f HashFunc[K]) Hash(key K) int {
	return f(key)
}

// SumOfCodes adds up the code point of every character in key.
// Anagrams always collide.
func SumOfCodes(key string) int {
	hash := 0
	for _, r := range key {
		hash += int(r)
	}
	return hash
}

// PositionWeightedSum adds up (i+1) * code for the character at position i.
func PositionWeightedSum(key string) int {
	hash := 0
	pos := 0
	for _, r := range key {
		hash += (pos + 1) * int(r)
		pos += 1
	}
	return hash
}

// XXHash hashes key with xxHash64, truncated to a non-negative int.
func XXHash(key string) int {
	return toNonNegativeInt(xxhash.Sum64String(key))
}

// NewSipHasher returns a SipHash-2-4 string hasher keyed with k0 and k1.
func NewSipHasher(k0, k1 uint64) HashFunc[string] {
	return func(key string) int {
		return toNonNegativeInt(siphash.Hash(k0, k1, []byte(key)))
	}
}

func toNonNegativeInt(h uint64) int {
	return int(h & uint64(math.MaxInt))
}

var hashFunctionNames = []string{HashSumOfCodes, HashPositionWeightedSum, HashXXHash, HashSipHash}

// HashFunctionNames lists the names accepted by HashFunctionByName.
func HashFunctionNames() []string {
	names := make([]string, len(hashFunctionNames))
	copy(names, hashFunctionNames)
	return names
}

// HashFunctionByName returns the string hasher registered under the given name.
func HashFunctionByName(name string) (HashFunc[string], error) {
	switch name {
	case HashSumOfCodes:
		return SumOfCodes, nil
	case HashPositionWeightedSum:
		return PositionWeightedSum, nil
	case HashXXHash:
		return XXHash, nil
	case HashSipHash:
		return NewSipHasher(0, 0), nil
	default:
		return nil, errors.Wrapf(ErrUnknownHashFunction, "\"%s\"", name)
	}
}
