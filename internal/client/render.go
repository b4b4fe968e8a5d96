// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// renderParameters draws rows as a table. Description and group columns are
// shown only when at least one row carries metadata.
func renderParameters(rows []parameterRow) string {
	if len(rows) == 0 {
		return emptyStyle.Render("no parameters")
	}

	described := false
	for _, row := range rows {
		described = described || row.described
	}

	headers := []string{"NAME", "KIND", "VALUE"}
	if described {
		headers = append(headers, "DESCRIPTION", "GROUP")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range rows {
		cells := []string{row.Name, row.Value.Kind().String(), row.Value.String()}
		if described {
			cells = append(cells, row.Description, row.Group)
		}
		t.Row(cells...)
	}

	return t.Render()
}
