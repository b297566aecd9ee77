package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/corey/radix/internal/adapters/alfred"
	"github.com/corey/radix/internal/app"
	"github.com/corey/radix/internal/domain/number"
	"github.com/corey/radix/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// render writes records in the requested format.
func render(w io.Writer, format string, records []number.Record) error {
	if format == app.OutputAlfred {
		return alfred.Write(w, records)
	}
	_, err := io.WriteString(w, formatRecords(records))
	return err
}

// formatRecords formats conversion results for terminal display.
//
//	  Binary       11111111
//	  Octal        377
//	  Decimal      255
func formatRecords(records []number.Record) string {
	var sb strings.Builder
	for _, r := range records {
		if !r.Valid {
			sb.WriteString(fmt.Sprintf("%s✗ %s%s\n", colorYellow, r.Title, colorReset))
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s%-12s%s %s%s%s\n",
			colorGray, r.Subtitle, colorReset,
			colorBold, r.Title, colorReset))
	}
	return sb.String()
}

// formatHistory formats history entries for terminal display, newest first.
//
//	⚡ 2 recent queries
//	  ff hex        Hexadecimal  255   2026-10-19 12:00
func formatHistory(entries []ports.HistoryEntry) string {
	var sb strings.Builder
	if len(entries) == 0 {
		sb.WriteString("⚡ no history\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("%s⚡ %d recent queries%s\n", colorBold, len(entries), colorReset))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s%-16s%s %s%-12s%s %d  %s%s%s\n",
			colorCyan, e.Query, colorReset,
			colorMagenta, e.Base, colorReset,
			e.Value,
			colorGray, e.At.Local().Format("2006-01-02 15:04"), colorReset))
	}
	return sb.String()
}

// historyRecords turns history entries into actionable rows so Alfred can
// re-run a past query.
func historyRecords(entries []ports.HistoryEntry) []number.Record {
	if len(entries) == 0 {
		return []number.Record{number.MessageRecord("No history yet")}
	}
	records := make([]number.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, number.Record{
			Title:    e.Query,
			Subtitle: fmt.Sprintf("%s → %d", e.Base, e.Value),
			Arg:      e.Query,
			Valid:    true,
		})
	}
	return records
}
