package internal_test

import (
	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/chained-hashmap/common/utils/hashmap"
	"github.com/scusemua/chained-hashmap/inspector/internal"
)

var _ = Describe("Exporter", func() {
	It("should write the links and statistics as JSON", func() {
		fs := afero.NewMemMapFs()
		table := newTable(3, hashmap.SumOfCodes)
		table.Put("a", 1)
		table.Put("b", "two")
		table.Put("d", 4)

		lookups := []internal.Lookup{{Key: "a", Value: 1, Found: true}}
		Expect(internal.NewExporter(fs).Export("links.json", "run-1", table, lookups)).To(Succeed())

		data, err := afero.ReadFile(fs, "links.json")
		Expect(err).ToNot(HaveOccurred())

		var doc internal.ExportDocument
		Expect(json.Unmarshal(data, &doc)).To(Succeed())

		Expect(doc.RunId).To(Equal("run-1"))
		Expect(doc.Links).To(Equal([]hashmap.Link[string, any]{
			{Key: "d", Value: float64(4)},
			{Key: "a", Value: float64(1)},
			{Key: "b", Value: "two"},
		}))
		Expect(doc.Lookups).To(HaveLen(1))
		Expect(doc.Stats).ToNot(BeNil())
		Expect(doc.Stats.Size).To(Equal(3))
		Expect(doc.Stats.Capacity).To(Equal(3))
		Expect(doc.Stats.EmptyBuckets).To(Equal(1))
		Expect(doc.Stats.Load).To(Equal(1.0))
	})

	It("should carry large integers from the script through to the export", func() {
		fs := afero.NewMemMapFs()
		Expect(afero.WriteFile(fs, "script.jsonc", []byte(`[
			{"op": "put", "key": "big", "value": 9007199254740993},
			{"op": "get", "key": "big"},
		]`), 0644)).To(Succeed())

		ops, err := internal.NewLoader(fs).Load("script.jsonc")
		Expect(err).ToNot(HaveOccurred())

		table := newTable(4, hashmap.PositionWeightedSum)
		runner := internal.NewRunner(table, zap.NewNop())
		lookups, err := runner.Run(ops)
		Expect(err).ToNot(HaveOccurred())
		Expect(lookups).To(HaveLen(1))
		Expect(lookups[0].Value).To(Equal(json.Number("9007199254740993")))

		Expect(internal.NewExporter(fs).Export("links.json", runner.RunId(), table, lookups)).To(Succeed())

		data, err := afero.ReadFile(fs, "links.json")
		Expect(err).ToNot(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("9007199254740993"))
		Expect(string(data)).ToNot(ContainSubstring("9007199254740992"))
	})
})
