// File: render.go
// Title: List Rendering
// Description: Renders member, facility and alias lists as text tables for
//              terminal output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package command

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/msto63/sportspa/internal/model/alias"
	"github.com/msto63/sportspa/internal/model/facility"
	"github.com/msto63/sportspa/internal/model/member"
)

func renderTable(header []string, rows [][]string) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.Render()
	return strings.TrimRight(b.String(), "\n")
}

// RenderMembers renders members with their one-based list positions
func RenderMembers(members []member.Member) string {
	rows := make([][]string, 0, len(members))
	for i, m := range members {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			m.Name().String(),
			m.Phone().String(),
			m.Email().String(),
			m.Address().String(),
			m.Tags().String(),
			m.Availability().String(),
		})
	}
	return renderTable([]string{"#", "Name", "Phone", "Email", "Address", "Tags", "Availability"}, rows)
}

// RenderFacilities renders facilities with their one-based list positions
func RenderFacilities(facilities []facility.Facility) string {
	rows := make([][]string, 0, len(facilities))
	for i, f := range facilities {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Name().String(),
			f.Location().String(),
			f.Time().String(),
			f.Capacity().String(),
		})
	}
	return renderTable([]string{"#", "Name", "Location", "Time", "Capacity"}, rows)
}

// RenderAliases renders shortcut to command word mappings
func RenderAliases(aliases []alias.Alias) string {
	rows := make([][]string, 0, len(aliases))
	for _, a := range aliases {
		rows = append(rows, []string{a.Shortcut().String(), a.CommandWord().String()})
	}
	return renderTable([]string{"Shortcut", "Command"}, rows)
}
