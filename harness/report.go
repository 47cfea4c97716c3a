// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// Column headers, in render order.
var reportHeaders = []string{"Variant", "Mean", "Median", "StdDev", "Ratio", "Allocated", "Allocs/op"}

// Report palette (teal scheme; degrades to plain text without a color profile).
const (
	colorHeader  = lipgloss.Color("#2CD7C7")
	colorBorder  = lipgloss.Color("#16858E")
	colorFastest = lipgloss.Color("#F4D03F")
)

// FormatNanos renders a ns/op figure with a unit chosen by magnitude.
func FormatNanos(ns float64) string {
	switch {
	case ns < 1e3:
		return fmt.Sprintf("%.1f ns", ns)
	case ns < 1e6:
		return fmt.Sprintf("%.2f µs", ns/1e3)
	case ns < 1e9:
		return fmt.Sprintf("%.2f ms", ns/1e6)
	default:
		return fmt.Sprintf("%.3f s", ns/1e9)
	}
}

// FormatBytes renders bytes/op in IEC units ("0 B" for no allocation).
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 B"
	}

	return humanize.IBytes(uint64(n))
}

// Rows returns the table body: one row per result, cells in reportHeaders order.
func (r *Report) Rows() [][]string {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		rows = append(rows, []string{
			res.Name,
			FormatNanos(res.Mean),
			FormatNanos(res.Median),
			FormatNanos(res.StdDev),
			fmt.Sprintf("%.2f", res.Ratio),
			FormatBytes(res.BytesPerOp),
			strconv.FormatInt(res.AllocsPerOp, 10),
		})
	}

	return rows
}

// Render writes a summary line and the results table to w.
// styled enables colors and bold headers; plain output contains no escape codes.
func (r *Report) Render(w io.Writer, styled bool) error {
	re := lipgloss.NewRenderer(w)
	cell := re.NewStyle().Padding(0, 1)
	header := cell
	border := re.NewStyle()
	fastest := cell
	if styled {
		header = header.Bold(true).Foreground(colorHeader)
		border = border.Foreground(colorBorder)
		fastest = fastest.Foreground(colorFastest)
	}
	best, _ := r.Fastest()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(reportHeaders...).
		Rows(r.Rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row >= 0 && row < len(r.Results) && r.Results[row].Name == best.Name:
				return fastest
			default:
				return cell
			}
		})

	_, err := fmt.Fprintf(w, "%s  session=%s  GOMAXPROCS=%d  samples=%d  warmup=%d  benchtime=%s\n%s\n",
		r.Suite, r.SessionID, r.GOMAXPROCS, r.Config.Samples, r.Config.Warmup, r.Config.BenchTime, t.Render())

	return err
}
