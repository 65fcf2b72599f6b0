// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/l3montree-dev/depgraph/dtos"
	"github.com/l3montree-dev/depgraph/utils"
)

func printBatchResults(results []dtos.BatchItemResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Item", "Result", "Error"})
	failed := 0
	for _, result := range results {
		status := text.FgGreen.Sprint("ok")
		if !result.Success {
			status = text.FgRed.Sprint("failed")
			failed++
		}
		tw.AppendRow(table.Row{result.Name, status, utils.SafeDereference(result.Error)})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d/%d ok", len(results)-failed, len(results)), ""})
	tw.Render()
}

func printSupplyChain(resp dtos.SupplyChainResponse) {
	fmt.Printf("%s@%s\n", resp.Parent.Name, resp.Parent.Version)

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Dependencies")
	tw.AppendHeader(table.Row{"Name", "Version", "Score", "Vulnerabilities"})
	for _, child := range resp.Children {
		score := "-"
		if child.Score != nil {
			score = fmt.Sprint(*child.Score)
		}
		ids := utils.Map(child.Vulnerabilities, func(v dtos.VulnerabilityDTO) string {
			return fmt.Sprintf("%s (%s)", v.OsvID, v.Severity)
		})
		tw.AppendRow(table.Row{child.Name, child.Version, score, text.WrapText(strings.Join(ids, ", "), 60)})
	}
	tw.Render()

	if len(resp.Ancestors) == 0 {
		return
	}
	fmt.Println("\nIntroduced through:")
	for _, path := range resp.Ancestors {
		labels := utils.Map(path, func(n dtos.SupplyChainNode) string {
			return n.Name + "@" + n.Version
		})
		fmt.Println("  " + strings.Join(labels, " > "))
	}
}
