// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dabria/models"
	"github.com/dustin/go-humanize"
)

const uiDivider = "──────────────────────────────────────────────────────"

const gaugeWidth = 30

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// renderGauge draws the quota usage as a bar followed by the percentage and
// the byte counts, e.g. "[██████░░░░] 61.0% · 312 MiB of 512 MiB".
func renderGauge(usage models.Usage) string {
	percent := usage.Percent()
	filled := int(percent / 100 * gaugeWidth)
	if filled == 0 && usage.UsedBytes > 0 {
		filled = 1
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", gaugeWidth-filled)
	style := gaugeFullStyle
	if percent >= 90 {
		style = gaugeWarnStyle
	}

	return fmt.Sprintf("[%s] %.1f%% · %s of %s",
		style.Render(bar),
		percent,
		humanize.IBytes(uint64(max(usage.UsedBytes, 0))),
		humanize.IBytes(uint64(max(usage.LimitBytes, 0))),
	)
}

func renderPageTabs(current int) string {
	tabs := make([]string, 0, models.LastPage)
	for p := models.FirstPage; p <= models.LastPage; p++ {
		label := fmt.Sprintf("Page %d", p)
		if p == current {
			tabs = append(tabs, activePageStyle.Render(label))
		} else {
			tabs = append(tabs, pageStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}
