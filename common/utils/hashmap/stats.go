package hashmap

import (
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/shopspring/decimal"
)

// Stats is a point-in-time summary of how entries are spread across a ChainedHashMap's buckets.
type Stats struct {
	Size         int             `json:"size"`
	Capacity     int             `json:"capacity"`
	EmptyBuckets int             `json:"empty_buckets"`
	LongestChain int             `json:"longest_chain"`
	Load         float64         `json:"load"`
	LoadDecimal  decimal.Decimal `json:"load_decimal"`

	// ChainLengths maps a chain length to the number of buckets with that length, in ascending order of length.
	// Lengths that no bucket has are omitted.
	ChainLengths *orderedmap.OrderedMap[int, int] `json:"-"`
}

// Stats computes the current Stats of the table.
func (m *ChainedHashMap[K, V]) Stats() *Stats {
	stats := &Stats{
		Size:         m.size,
		Capacity:     m.capacity,
		Load:         m.TableLoad(),
		LoadDecimal:  decimal.NewFromInt(int64(m.size)).Div(decimal.NewFromInt(int64(m.capacity))),
		ChainLengths: orderedmap.NewOrderedMap[int, int](),
	}

	counts := make(map[int]int)
	for _, bucket := range m.buckets {
		length := bucket.Len()
		if length == 0 {
			stats.EmptyBuckets += 1
		}
		if length > stats.LongestChain {
			stats.LongestChain = length
		}
		counts[length] += 1
	}

	for length := 0; length <= stats.LongestChain; length++ {
		if n, ok := counts[length]; ok {
			stats.ChainLengths.Set(length, n)
		}
	}

	return stats
}

func (s *Stats) String() string {
	return fmt.Sprintf("Stats[Size=%d, Capacity=%d, EmptyBuckets=%d, LongestChain=%d, Load=%s]",
		s.Size, s.Capacity, s.EmptyBuckets, s.LongestChain, s.LoadDecimal.StringFixed(4))
}
