package hashmap_test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
)

var _ = Describe("Stats", func() {
	It("should describe an empty table", func() {
		stats := newMap(4, hashmap.SumOfCodes).Stats()

		Expect(stats.Size).To(Equal(0))
		Expect(stats.Capacity).To(Equal(4))
		Expect(stats.EmptyBuckets).To(Equal(4))
		Expect(stats.LongestChain).To(Equal(0))
		Expect(stats.Load).To(Equal(0.0))
		Expect(stats.LoadDecimal.IsZero()).To(BeTrue())
		Expect(stats.ChainLengths.Keys()).To(Equal([]int{0}))

		n, _ := stats.ChainLengths.Get(0)
		Expect(n).To(Equal(4))
	})

	It("should summarise chain lengths in ascending order", func() {
		m := newMap(4, hashmap.SumOfCodes)
		m.Put("a", 1) // 97 % 4 == 1
		m.Put("e", 2) // 101 % 4 == 1
		m.Put("i", 3) // 105 % 4 == 1
		m.Put("b", 4) // 98 % 4 == 2

		stats := m.Stats()
		Expect(stats.Size).To(Equal(4))
		Expect(stats.EmptyBuckets).To(Equal(m.EmptyBuckets()))
		Expect(stats.LongestChain).To(Equal(3))
		Expect(stats.Load).To(Equal(m.TableLoad()))
		Expect(stats.LoadDecimal.Equal(decimal.NewFromInt(1))).To(BeTrue())

		Expect(stats.ChainLengths.Keys()).To(Equal([]int{0, 1, 3}))
		empty, _ := stats.ChainLengths.Get(0)
		Expect(empty).To(Equal(2))
		single, _ := stats.ChainLengths.Get(1)
		Expect(single).To(Equal(1))
		triple, _ := stats.ChainLengths.Get(3)
		Expect(triple).To(Equal(1))
	})

	It("should render a summary line", func() {
		m := newMap(10, hashmap.PositionWeightedSum)
		m.Put("a", 1)
		m.Put("b", 2)
		Expect(m.ResizeTable(5)).To(Succeed())

		Expect(m.Stats().String()).To(Equal("Stats[Size=2, Capacity=5, EmptyBuckets=3, LongestChain=1, Load=0.4000]"))
	})
})
