package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/exped-planner/internal/catalog"
	"github.com/napolitain/exped-planner/internal/converter"
	"github.com/napolitain/exped-planner/internal/economy"
	"github.com/napolitain/exped-planner/internal/fleet"
	"github.com/napolitain/exped-planner/internal/loader"
	"github.com/napolitain/exped-planner/internal/models"
	"github.com/napolitain/exped-planner/internal/solver"
	"github.com/napolitain/exped-planner/internal/tui"
)

var (
	dataDir    string
	configFile string
	strict     bool
	quiet      bool
	jsonOutput bool

	world      int
	presetName string
	random     bool
	seed       int64
	fleets     int
	afkTime    string
	priority   map[string]string
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("14")).
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

func main() {
	rootCmd := &cobra.Command{
		Use:   "expeds",
		Short: "Expedition income and resupply planner",
		Long: `Lists expeditions with their rewards and resupply cost, and picks
the most profitable expeditions for the available fleets.`,
	}

	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Directory with exped-info.json and missions.json (embedded data when empty)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML planner config")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail on unknown item codes and missing compositions")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if jsonOutput {
			quiet = true
		}
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List expeditions",
		Args:  cobra.NoArgs,
		Run:   runList,
	}
	listCmd.Flags().IntVarP(&world, "world", "w", 0, "Only list one world")

	showCmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show income and resupply of one expedition",
		Args:  cobra.ExactArgs(1),
		Run:   runShow,
	}
	addConfigFlags(showCmd)

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Pick the best expeditions for the available fleets",
		Args:  cobra.NoArgs,
		Run:   runPlan,
	}
	addConfigFlags(planCmd)
	planCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Only consider the expeditions of a preset")
	planCmd.Flags().IntVarP(&fleets, "fleets", "f", 0, "Number of expedition fleets (config value when 0)")
	planCmd.Flags().StringVar(&afkTime, "afk", "", "AFK window as HH:MM")
	planCmd.Flags().StringToStringVar(&priority, "priority", nil, "Resource weights, e.g. fuel=1,steel=2")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive planner",
		Args:  cobra.NoArgs,
		Run:   runTUI,
	}
	addConfigFlags(tuiCmd)
	tuiCmd.Flags().StringVarP(&presetName, "preset", "p", "", "Initial selection preset")

	rootCmd.AddCommand(listCmd, showCmd, planCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&random, "random", false, "Use a random config table instead of the config file")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Seed of the random config table")
}

func fatalf(format string, args ...any) {
	color.Red(format, args...)
	os.Exit(1)
}

func printBanner(subtitle string) {
	if quiet {
		return
	}
	fmt.Println(bannerStyle.Render("Expedition Planner\n" + subtitle))
	fmt.Println()
}

func warnf(format string, args ...any) {
	color.Yellow("Warning: "+format, args...)
}

func loadCatalog() *catalog.Catalog {
	opts := loader.Options{Strict: strict, Warnf: warnf}

	var infos []*models.ExpeditionInfo
	var err error
	if dataDir == "" {
		infos, err = loader.LoadDefault(opts)
	} else {
		infos, err = loader.LoadDir(dataDir, opts)
	}
	if err != nil {
		fatalf("Error loading expeditions: %v", err)
	}

	cat, err := catalog.New(infos)
	if err != nil {
		fatalf("Error building catalog: %v", err)
	}
	if !quiet {
		color.New(color.FgYellow).Printf("📦 Loaded %d expeditions\n\n", cat.Len())
	}
	return cat
}

func loadConfig() *models.PlannerConfig {
	if configFile == "" {
		cfg := models.DefaultPlannerConfig()
		cfg.StrictItems = strict
		return cfg
	}
	cfg, err := models.LoadPlannerConfig(configFile)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	if err := models.ValidatePlannerConfig(cfg); err != nil {
		fatalf("Invalid config: %v", err)
	}
	if cfg.StrictItems {
		strict = true
	}
	if !quiet {
		color.New(color.FgYellow).Printf("📄 Loaded config from %s\n\n", configFile)
	}
	return cfg
}

// configSource picks the random table or the planner config
func configSource(cat *catalog.Catalog, cfg *models.PlannerConfig) solver.ConfigSource {
	if random {
		rng := rand.New(rand.NewSource(seed))
		return solver.ConfigTable(economy.RandomConfigTable(rng, cat.IDs()))
	}
	return cfg
}

func costModel(cfg *models.PlannerConfig) *fleet.CostModel {
	if len(cfg.CostModel) == 0 {
		return fleet.DefaultCostModel()
	}
	return fleet.NewCostModel(cfg.CostModel)
}

func runList(cmd *cobra.Command, args []string) {
	printBanner("Expeditions")
	loadConfig()
	cat := loadCatalog()

	groups := worldGroups(cat, world)
	if jsonOutput {
		printJSON(expeditionMessages(groups))
		return
	}

	for _, group := range groups {
		color.New(color.FgCyan, color.Bold).Printf("World %d\n", group[0].World())
		printExpeditionTable(group)
		fmt.Println()
	}
}

// worldGroups returns the catalog's world groups, or only world w when w is not 0
func worldGroups(cat *catalog.Catalog, w int) [][]*models.ExpeditionInfo {
	var groups [][]*models.ExpeditionInfo
	for _, group := range cat.Worlds() {
		if w == 0 || group[0].World() == w {
			groups = append(groups, group)
		}
	}
	return groups
}

// expeditionMessages flattens groups into report messages; never nil
func expeditionMessages(groups [][]*models.ExpeditionInfo) []converter.ExpeditionMessage {
	msgs := []converter.ExpeditionMessage{}
	for _, group := range groups {
		for _, info := range group {
			msgs = append(msgs, converter.ExpeditionToMessage(info))
		}
	}
	return msgs
}

func runShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	cat := loadCatalog()

	info, err := cat.Lookup(args[0])
	if err != nil {
		fatalf("%v", err)
	}

	configs := configSource(cat, cfg)
	if jsonOutput {
		ev, err := economy.Evaluate(info, configs.ConfigFor(info.ID), costModel(cfg).Lookup)
		if err != nil {
			fatalf("%v", err)
		}
		printJSON(converter.EvaluationToMessage(ev))
		return
	}
	printExpeditionDetail(info, configs.ConfigFor(info.ID), costModel(cfg))
}

func runPlan(cmd *cobra.Command, args []string) {
	printBanner("Fleet Plan")
	cfg := loadConfig()
	cat := loadCatalog()

	req := solver.RequestFromConfig(cfg)
	req.Configs = configSource(cat, cfg)
	if fleets != 0 {
		req.Fleets = fleets
	}
	if afkTime != "" {
		minutes, err := models.ParseTime(afkTime)
		if err != nil {
			fatalf("Invalid --afk: %v", err)
		}
		req.AFKMinutes = minutes
	}
	if len(priority) > 0 {
		weights, err := parsePriority(priority)
		if err != nil {
			fatalf("Invalid --priority: %v", err)
		}
		req.Priority = weights
	}
	if presetName != "" {
		preset, ok := models.FindPreset(presetName)
		if !ok {
			fatalf("Unknown preset %q (available: %s)", presetName, presetNames())
		}
		req.Candidates = preset.IDs
	}

	s := &solver.Solver{Catalog: cat, CostModel: costModel(cfg)}
	solution, err := s.Solve(req)
	if err != nil {
		fatalf("Error planning: %v", err)
	}
	if jsonOutput {
		printJSON(converter.SolutionToMessage(req, solution))
		return
	}
	printPlan(cat, req, solution)
}

func runTUI(cmd *cobra.Command, args []string) {
	quiet = true
	cfg := loadConfig()
	cat := loadCatalog()

	selected := cfg.Selected
	if presetName != "" {
		preset, ok := models.FindPreset(presetName)
		if !ok {
			fatalf("Unknown preset %q (available: %s)", presetName, presetNames())
		}
		selected = preset.IDs
	}

	m := tui.NewModel(cat, tui.Options{
		Configs:    configSource(cat, cfg),
		CostModel:  costModel(cfg),
		Fleets:     cfg.Fleets,
		AFKMinutes: cfg.AFKMinutes,
		Priority:   cfg.Priority,
		Selected:   selected,
	})
	if err := tui.Run(m); err != nil {
		fatalf("Error running planner: %v", err)
	}
}

// parsePriority reads resource=weight pairs; unnamed resources weigh 0
func parsePriority(pairs map[string]string) (models.Weights, error) {
	var w models.Weights
	for key, value := range pairs {
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return w, fmt.Errorf("weight of %s: %w", key, err)
		}
		if weight < 0 {
			return w, fmt.Errorf("weight of %s must be >= 0", key)
		}
		switch models.ResourceType(strings.ToLower(strings.TrimSpace(key))) {
		case models.Fuel:
			w.Fuel = weight
		case models.Ammo:
			w.Ammo = weight
		case models.Steel:
			w.Steel = weight
		case models.Bauxite:
			w.Bauxite = weight
		default:
			return w, &models.UnknownEnumVariantError{Kind: "resource", Value: key}
		}
	}
	return w, nil
}

func presetNames() string {
	var names []string
	for _, p := range models.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}
