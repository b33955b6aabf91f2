package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/simonhull/mpegaudio"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

var resultHeaders = []string{"File", "Source", "Format", "Mode", "Channels", "Sample Rate", "Bitrate", "Frames", "Duration"}

var resultAligns = []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}

func renderResults(results []fileResult) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, resultRow(r))
	}
	return renderTable(resultHeaders, rows, resultAligns)
}

func resultRow(r fileResult) []string {
	if r.Header == nil {
		return []string{r.Path, "error: " + r.Error}
	}
	h := r.Header
	source := h.Source.String()
	if r.Cached {
		source += " (cached)"
	}
	return []string{
		r.Path,
		source,
		formatName(*h),
		modeName(h.Mode),
		h.ChannelDescription(),
		formatSampleRate(h.AvgSampleRateHz),
		formatBitrate(h),
		fmt.Sprintf("%d", h.FrameCount),
		formatDuration(h.TotalDuration),
	}
}

func formatName(h mpegaudio.Header) string {
	var parts []string
	if h.Version.Known() {
		parts = append(parts, h.Version.String())
	}
	if h.Layer.Known() {
		parts = append(parts, h.Layer.String())
	}
	if len(parts) == 0 {
		return "mixed"
	}
	return strings.Join(parts, " ")
}

func modeName(m mpegaudio.Mode) string {
	if !m.Known() {
		return "mixed"
	}
	return m.String()
}

func formatSampleRate(rate *uint16) string {
	if rate == nil {
		return "-"
	}
	return fmt.Sprintf("%d Hz", *rate)
}

func formatBitrate(h *mpegaudio.Header) string {
	if h.AvgBitrateBps == nil || *h.AvgBitrateBps == 0 {
		if h.FrameCount > 0 && h.MaxBitrateBps == 0 {
			return "free"
		}
		return "-"
	}
	avg := fmt.Sprintf("%d kbps", *h.AvgBitrateBps/1000)
	if h.MinBitrateBps != h.MaxBitrateBps {
		avg += " (VBR)"
	}
	return avg
}

// formatDuration renders m:ss.mmm, with hours when needed.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Millisecond)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	ms := d / time.Millisecond
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
	}
	return fmt.Sprintf("%d:%02d.%03d", m, s, ms)
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
