package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/models"
	"github.com/napolitain/exped-planner/internal/solver"
)

func printExpeditionTable(infos []*models.ExpeditionInfo) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Name", "Time", "Fuel", "Ammo", "Steel", "Bauxite", "Item", "GS Item", "Fleet", "Cost %"}),
	)

	for _, info := range infos {
		table.Append([]string{
			fmt.Sprintf("%d", info.ID),
			info.Name,
			models.FormatTime(info.Time),
			fmt.Sprintf("%d", info.Resource.Fuel),
			fmt.Sprintf("%d", info.Resource.Ammo),
			fmt.Sprintf("%d", info.Resource.Steel),
			fmt.Sprintf("%d", info.Resource.Bauxite),
			info.ItemProb.Label(false),
			info.ItemGS.Label(true),
			info.MinCompo.String(),
			fmt.Sprintf("%d/%d", info.Cost.FuelPercent, info.Cost.AmmoPercent),
		})
	}
	table.Render()
}

func printExpeditionDetail(info *models.ExpeditionInfo, cfg models.ExpedConfig, model *fleet.CostModel) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Printf("%d. %s\n", info.ID, info.Name)
	fmt.Printf("   World %d, %s\n", info.World(), models.FormatTime(info.Time))
	fmt.Printf("   Minimum fleet: %s\n", info.MinCompo)
	fmt.Printf("   Resupply: %d%% fuel, %d%% ammo\n", info.Cost.FuelPercent, info.Cost.AmmoPercent)
	fmt.Printf("   Items: %s, great success %s\n", info.ItemProb.Label(false), info.ItemGS.Label(true))
	fmt.Println()

	infoColor.Println("⚙️  Config:")
	fmt.Printf("   Income: %s\n", cfg.Modifier)
	fmt.Printf("   Cost:   %s\n", cfg.Cost)
	fmt.Println()

	ev, err := economy.Evaluate(info, cfg, model.Lookup)
	if err != nil {
		color.Red("   %v", err)
		return
	}

	if ev.Resupply.Compo != nil {
		fmt.Printf("   Fleet: %s\n\n", ev.Resupply.Compo)
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"", "Fuel", "Ammo", "Steel", "Bauxite"}),
	)
	table.Append(resourceRow("Base", info.Resource))
	table.Append(resourceRow("Gross", ev.Gross))
	table.Append(costRow(ev.Resupply.Cost))
	if ev.Net != nil {
		table.Append(resourceRow("Net", *ev.Net))
	} else {
		table.Append([]string{"Net", "N/A", "N/A", "N/A", "N/A"})
	}
	table.Append(rateRow("Net/h", ev))
	table.Render()
}

func resourceRow(label string, r models.Resources) []string {
	row := []string{label}
	for _, rt := range models.AllResourceTypes() {
		row = append(row, fmt.Sprintf("%d", r.Get(rt)))
	}
	return row
}

func costRow(cost *economy.Cost) []string {
	if cost == nil {
		return []string{"Resupply", "N/A", "N/A", "-", "-"}
	}
	return []string{"Resupply", fmt.Sprintf("-%d", cost.Fuel), fmt.Sprintf("-%d", cost.Ammo), "-", "-"}
}

func rateRow(label string, ev *economy.Evaluation) []string {
	row := []string{label}
	for _, rt := range models.AllResourceTypes() {
		rate, ok := ev.NetPerHour(rt)
		if !ok {
			row = append(row, "N/A")
			continue
		}
		row = append(row, fmt.Sprintf("%.1f", rate))
	}
	return row
}

func printPlan(cat *catalog.Catalog, req solver.Request, solution *solver.Solution) {
	infoColor := color.New(color.FgYellow)
	successColor := color.New(color.FgGreen, color.Bold)

	if !quiet {
		infoColor.Println("🎯 Request:")
		fmt.Printf("   Fleets: %d\n", req.Fleets)
		if req.AFKMinutes > 0 {
			fmt.Printf("   AFK window: %s\n", models.FormatTime(req.AFKMinutes))
		}
		fmt.Printf("   Priority: fuel=%g ammo=%g steel=%g bauxite=%g\n",
			req.Priority.Fuel, req.Priority.Ammo, req.Priority.Steel, req.Priority.Bauxite)
		if len(req.Candidates) > 0 {
			fmt.Printf("   Candidates: %v\n", req.Candidates)
		} else {
			fmt.Printf("   Candidates: all %d expeditions\n", cat.Len())
		}
		fmt.Println()
	}

	if len(solution.Picks) == 0 {
		color.Red("No expedition could be planned")
	} else {
		successColor.Printf("✓ Best %d expeditions:\n", len(solution.Picks))
		printPicks(solution.Picks)
	}

	if len(solution.Skipped) > 0 && !quiet {
		fmt.Println()
		infoColor.Println("⚠️  Skipped:")
		for _, s := range solution.Skipped {
			fmt.Printf("   %d: %s\n", s.ID, s.Reason)
		}
	}

	if len(solution.Picks) > 0 {
		perHour := solution.PerHour()
		fmt.Println("\n📊 Total per hour:")
		var parts []string
		for _, rt := range models.AllResourceTypes() {
			parts = append(parts, fmt.Sprintf("%s %.1f", rt, perHour[rt]))
		}
		fmt.Printf("   %s\n", strings.Join(parts, ", "))
	}
}

func printPicks(picks []solver.Pick) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "ID", "Name", "Time", "Income", "Cost", "Fuel/h", "Ammo/h", "Steel/h", "Bauxite/h", "Score"}),
	)

	for i, p := range picks {
		info := p.Eval.Info
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", info.ID),
			info.Name,
			models.FormatTime(info.Time),
			p.Eval.Config.Modifier.String(),
			p.Eval.Config.Cost.String(),
		}
		for _, rt := range models.AllResourceTypes() {
			row = append(row, fmt.Sprintf("%.1f", p.Metric.PerHour(rt)))
		}
		row = append(row, fmt.Sprintf("%.1f", p.Score))
		table.Append(row)
	}
	table.Render()
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("Error encoding JSON: %v", err)
	}
	fmt.Println(string(data))
}
