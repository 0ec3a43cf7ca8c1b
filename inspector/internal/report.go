package internal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scusemua/chained-hashmap/common/utils"
)

// RenderReport renders the bucket dump, the table statistics and the results of any lookups.
func RenderReport(table *Table, lookups []Lookup) string {
	sections := []string{renderBuckets(table), renderStats(table)}
	if len(lookups) > 0 {
		sections = append(sections, renderLookups(lookups))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderBuckets(table *Table) string {
	var sb strings.Builder
	sb.WriteString(utils.HeaderStyle.Render("Buckets"))
	for i := 0; i < table.Capacity(); i++ {
		index := utils.LightBlueStyle.Render(fmt.Sprintf("%d:", i))
		if table.BucketLen(i) == 0 {
			sb.WriteString(fmt.Sprintf("\n%s %s", index, utils.GrayStyle.Render(table.BucketString(i))))
		} else {
			sb.WriteString(fmt.Sprintf("\n%s %s", index, table.BucketString(i)))
		}
	}
	return sb.String()
}

func renderStats(table *Table) string {
	stats := table.Stats()

	var sb strings.Builder
	sb.WriteString(utils.HeaderStyle.Render("Statistics"))
	sb.WriteString(fmt.Sprintf("\nsize: %d", stats.Size))
	sb.WriteString(fmt.Sprintf("\ncapacity: %d", stats.Capacity))
	sb.WriteString(fmt.Sprintf("\nempty buckets: %d", stats.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("\nlongest chain: %d", stats.LongestChain))
	sb.WriteString(fmt.Sprintf("\nload: %s", utils.LoadStyle(stats.Load).Render(stats.LoadDecimal.StringFixed(4))))
	for el := stats.ChainLengths.Front(); el != nil; el = el.Next() {
		sb.WriteString(fmt.Sprintf("\n  chains of length %d: %d", el.Key, el.Value))
	}
	return sb.String()
}

func renderLookups(lookups []Lookup) string {
	var sb strings.Builder
	sb.WriteString(utils.HeaderStyle.Render("Lookups"))
	for _, lookup := range lookups {
		key := utils.LightPurpleStyle.Render(fmt.Sprintf("%q", lookup.Key))
		if lookup.Found {
			sb.WriteString(fmt.Sprintf("\n%s -> %s", key, utils.GreenStyle.Render(fmt.Sprintf("%v", lookup.Value))))
		} else {
			sb.WriteString(fmt.Sprintf("\n%s -> %s", key, utils.RedStyle.Render("not found")))
		}
	}
	return sb.String()
}
