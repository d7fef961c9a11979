package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/loader"
	"github.com/napolitain/exped-planner/internal/models"
)

var (
	dataDir    string
	configFile string
	expedQuery string
	count      int
	wildcard   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fleet",
		Short: "Expedition fleet composition and resupply cost",
		Long: `Shows the per-ship-type resupply cost model and resolves the
fleet an expedition needs for a given fleet size.`,
		Run: runCosts,
	}
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Directory with exped-info.json and missions.json (embedded data when empty)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML planner config (for its cost_model)")
	rootCmd.Flags().StringVarP(&expedQuery, "exped", "e", "", "Price ships at the resupply percentages of an expedition")

	resolveCmd := &cobra.Command{
		Use:   "resolve <id|name>",
		Short: "Resolve the fleet composition of an expedition",
		Args:  cobra.ExactArgs(1),
		Run:   runResolve,
	}
	resolveCmd.Flags().IntVarP(&count, "count", "n", 6, "Fleet size")
	resolveCmd.Flags().StringVarP(&wildcard, "wildcard", "w", "DD", "Ship type filling free slots, or false")
	rootCmd.AddCommand(resolveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printBanner() {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n╭───────────────────────────╮")
	titleColor.Println("│  Expedition Fleet         │")
	titleColor.Println("│  Resupply Cost Model      │")
	titleColor.Println("╰───────────────────────────╯")
	fmt.Println()
}

func loadCostModel() *fleet.CostModel {
	if configFile == "" {
		return fleet.DefaultCostModel()
	}
	cfg, err := models.LoadPlannerConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if err := models.ValidatePlannerConfig(cfg); err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}
	return fleet.NewCostModel(cfg.CostModel)
}

func lookupExpedition(query string) *models.ExpeditionInfo {
	opts := loader.Options{Warnf: func(format string, args ...any) {
		color.Yellow("Warning: "+format, args...)
	}}

	var infos []*models.ExpeditionInfo
	var err error
	if dataDir == "" {
		infos, err = loader.LoadDefault(opts)
	} else {
		infos, err = loader.LoadDir(dataDir, opts)
	}
	if err != nil {
		color.Red("Error loading expeditions: %v", err)
		os.Exit(1)
	}
	cat, err := catalog.New(infos)
	if err != nil {
		color.Red("Error building catalog: %v", err)
		os.Exit(1)
	}
	info, err := cat.Lookup(query)
	if err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}
	return info
}

func runCosts(cmd *cobra.Command, args []string) {
	printBanner()
	model := loadCostModel()

	var percent *models.CostPercent
	if expedQuery != "" {
		info := lookupExpedition(expedQuery)
		percent = &info.Cost
		fmt.Printf("📋 Resupply at %d. %s (%d%% fuel, %d%% ammo):\n",
			info.ID, info.Name, info.Cost.FuelPercent, info.Cost.AmmoPercent)
	} else {
		fmt.Println("📋 Ship Types:")
	}
	printCostModel(model, percent)
}

func printCostModel(model *fleet.CostModel, percent *models.CostPercent) {
	header := []string{"Type", "Name", "Max Fuel", "Max Ammo"}
	if percent != nil {
		header = append(header, "Fuel Cost", "Ammo Cost")
	}
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))

	for _, st := range model.Types() {
		stats, _ := model.Stats(st)
		name := "-"
		if def := models.GetShipDefinition(st); def != nil {
			name = def.Name
		}
		row := []string{
			string(st),
			name,
			fmt.Sprintf("%d", stats.Fuel),
			fmt.Sprintf("%d", stats.Ammo),
		}
		if percent != nil {
			cost, _ := model.ShipCost(st, *percent)
			row = append(row, fmt.Sprintf("%d", cost.FuelCost), fmt.Sprintf("%d", cost.AmmoCost))
		}
		table.Append(row)
	}
	table.Render()
}

func runResolve(cmd *cobra.Command, args []string) {
	successColor := color.New(color.FgGreen, color.Bold)

	chosen, err := models.ParseShipType(wildcard)
	if err != nil {
		color.Red("Invalid --wildcard: %v", err)
		os.Exit(1)
	}
	costCfg := models.ModelCost(chosen, count)
	if err := costCfg.Validate(); err != nil {
		color.Red("Invalid fleet: %v", err)
		os.Exit(1)
	}

	model := loadCostModel()
	info := lookupExpedition(args[0])

	fmt.Printf("📋 %d. %s\n", info.ID, info.Name)
	fmt.Printf("   Minimum fleet: %s\n", info.MinCompo)

	abstract, err := fleet.AtLeast(count, info.MinCompo)
	if err != nil {
		color.Red("   %v", err)
		os.Exit(1)
	}
	fmt.Printf("   Fleet of %d: %s (+%d free)\n", abstract.Total(), abstract.Ships, abstract.Padding)

	resupply, err := economy.ComputeResupplyInfo(costCfg)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	result, err := resupply(info, model.Lookup(info.Cost))
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}

	successColor.Printf("\n✓ Fleet (%s): %s\n", costCfg, result.Compo)
	if result.Cost == nil {
		color.Yellow("   Resupply: N/A (free slots have no ship type or a type is not in the cost model)")
		return
	}
	fmt.Printf("   Resupply: %d fuel, %d ammo\n", result.Cost.Fuel, result.Cost.Ammo)
}
