package internal_test

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chained-hashmap/common/utils"
	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
	"github.com/scusemua/chained-hashmap/inspector/internal"
)

var _ = Describe("RenderReport", func() {
	var table *internal.Table

	BeforeEach(func() {
		table = newTable(3, hashmap.SumOfCodes)
		table.Put("a", 1) // 97 % 3 == 1
		table.Put("b", 2) // 98 % 3 == 2
		table.Put("d", 4) // 100 % 3 == 1
	})

	It("should render every bucket", func() {
		report := internal.RenderReport(table, nil)

		Expect(report).To(ContainSubstring("Buckets"))
		Expect(report).To(ContainSubstring("0: []"))
		Expect(report).To(ContainSubstring("1: [(d, 4) -> (a, 1)]"))
		Expect(report).To(ContainSubstring("2: [(b, 2)]"))
		Expect(report).ToNot(ContainSubstring("Lookups"))
	})

	It("should render the statistics", func() {
		report := internal.RenderReport(table, nil)

		Expect(report).To(ContainSubstring("size: 3"))
		Expect(report).To(ContainSubstring("capacity: 3"))
		Expect(report).To(ContainSubstring("empty buckets: 1"))
		Expect(report).To(ContainSubstring("longest chain: 2"))
		Expect(report).To(ContainSubstring("load: 1.0000"))
		Expect(report).To(ContainSubstring("chains of length 0: 1"))
		Expect(report).To(ContainSubstring("chains of length 1: 1"))
		Expect(report).To(ContainSubstring("chains of length 2: 1"))
	})

	It("should render lookups", func() {
		report := internal.RenderReport(table, []internal.Lookup{
			{Key: "a", Value: 1, Found: true},
			{Key: "z", Found: false},
		})

		Expect(report).To(ContainSubstring("Lookups"))
		Expect(report).To(ContainSubstring(`"a" -> 1`))
		Expect(report).To(ContainSubstring(`"z" -> not found`))
	})

	Context("With colors enabled", func() {
		BeforeEach(func() {
			lipgloss.SetColorProfile(termenv.ANSI256)
			DeferCleanup(lipgloss.SetColorProfile, termenv.Ascii)
		})

		It("should highlight lookup keys", func() {
			report := internal.RenderReport(table, []internal.Lookup{
				{Key: "a", Value: 1, Found: true},
				{Key: "z", Found: false},
			})

			Expect(report).To(ContainSubstring(utils.LightPurpleStyle.Render(`"a"`) + " -> " + utils.GreenStyle.Render("1")))
			Expect(report).To(ContainSubstring(utils.LightPurpleStyle.Render(`"z"`) + " -> " + utils.RedStyle.Render("not found")))
			Expect(utils.LightPurpleStyle.Render(`"a"`)).ToNot(Equal(`"a"`))
		})

		It("should gray out empty buckets", func() {
			report := internal.RenderReport(table, nil)

			Expect(report).To(ContainSubstring(utils.GrayStyle.Render("[]")))
			Expect(report).To(ContainSubstring("[(d, 4) -> (a, 1)]"))
		})
	})
})
