// 14 Oct 2026

package main

import (
	"fmt"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/andrew-torda/seqqc/pkg/result"
	"github.com/andrew-torda/seqqc/pkg/seq"
	"github.com/andrew-torda/seqqc/pkg/seqcalc"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	invalidStyle = cellStyle.Foreground(lipgloss.Color("#9CA3AF"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...)
}

// resultTable has one row per result. Invalid rows show the
// original id and the reason.
func resultTable(rs []result.Result) string {
	var rows [][]string
	invalid := make(map[int]bool)
	for i, r := range rs {
		n := strconv.Itoa(i + 1)
		if p := r.Problem; p != nil {
			invalid[i] = true
			rows = append(rows, []string{n, r.ID, p.OriginalID, r.Format.String(), "", "", "", "", p.Reason})
			continue
		}
		phred := ""
		if r.Format == seq.Fastq {
			phred = strconv.FormatUint(r.Phred(), 10)
		}
		m := r.Metrics
		rows = append(rows, []string{n, r.ID, r.Desc, r.Format.String(),
			strconv.Itoa(m.SeqLen), fmt.Sprintf("%.4f", m.GC), strconv.Itoa(m.NOrfs), phred, ""})
	}
	return newTable("#", "id", "desc", "type", "len", "gc", "orfs", "phred", "problem").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case invalid[row]:
				return invalidStyle
			}
			return cellStyle
		}).
		String()
}

// compTable prints the fractions from seqcalc.Composition, one row per record.
func compTable(recs []seq.Record, mat *matrix.FMatrix2d) string {
	headers := []string{"id"}
	for _, c := range seqcalc.CompSyms {
		headers = append(headers, string(c))
	}
	headers = append(headers, "other")
	rows := make([][]string, len(recs))
	for i, rec := range recs {
		row := []string{rec.ID}
		if !rec.Valid {
			row[0] = result.InvalidID
		}
		for _, x := range mat.Mat[i] {
			row = append(row, fmt.Sprintf("%.3f", x))
		}
		rows[i] = row
	}
	return newTable(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
