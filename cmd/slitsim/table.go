// SPDX-License-Identifier: MIT

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// newTable returns a writer with the light box style and numeric columns
// (1-based numbers in rightCols) right-aligned.
func newTable(header table.Row, rightCols ...int) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(header)

	cfgs := make([]table.ColumnConfig, len(rightCols))
	for i, n := range rightCols {
		cfgs[i] = table.ColumnConfig{Number: n, Align: text.AlignRight}
	}
	w.SetColumnConfigs(cfgs)

	return w
}

// renderTable renders w as ASCII or, when markdown is set, as a GitHub table.
func renderTable(w table.Writer, markdown bool) string {
	if markdown {
		return w.RenderMarkdown()
	}

	return w.Render()
}
