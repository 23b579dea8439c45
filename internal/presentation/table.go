package presentation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

var tableHeader = []string{"CODE", "NAME", "ABBR", "RELATIONS"}

// relations summarizes the relationship fields of v as key=value pairs.
func relations(v VariantDTO) string {
	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	add("region", v.Region)
	add("data_center", v.DataCenter)
	add("data_centers", strings.Join(v.DataCenters, ","))
	add("worlds", strings.Join(v.Worlds, ","))
	add("race", v.Race)
	add("clans", strings.Join(v.Clans, ","))
	add("role", v.Role)
	add("classification", v.Classification)
	add("base_class", v.BaseClass)
	add("jobs", strings.Join(v.Jobs, ","))
	add("epithet", v.Epithet)
	if v.Moon != 0 {
		add("moon", strconv.Itoa(v.Moon))
	}
	return strings.Join(parts, " ")
}

// writeTable aligns columns by display width, so Hangul names take two
// cells per rune.
func writeTable(w io.Writer, variants []VariantDTO) error {
	rows := make([][]string, 0, len(variants)+1)
	rows = append(rows, tableHeader)
	for _, v := range variants {
		rows = append(rows, []string{v.Code, v.Name, v.Abbreviation, relations(v)})
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for _, row := range rows {
		var b strings.Builder
		for i, cell := range row {
			if i == len(row)-1 {
				b.WriteString(cell)
				break
			}
			b.WriteString(runewidth.FillRight(cell, widths[i]))
			b.WriteString("  ")
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
