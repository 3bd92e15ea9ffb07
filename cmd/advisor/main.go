package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-idle/internal/format"
	"github.com/napolitain/solver-idle/internal/models"
	"github.com/napolitain/solver-idle/internal/solver"
	"github.com/napolitain/solver-idle/internal/solver/bubba"
	"github.com/napolitain/solver-idle/internal/solver/orion"
)

var (
	configFile string
	quiet      bool
	nextOnly   bool
)

// report is everything printed for one economy
type report struct {
	title        string
	currency     string
	genUnit      string
	balance      float64
	generation   float64
	target       solver.Target
	timeToTarget float64
	analysis     []solver.UpgradeAnalysis
	best         int
	describe     bool
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "advisor",
		Short: "Idle game upgrade efficiency advisor",
		Long: `Ranks every purchasable upgrade by how much sooner it reaches the
next milestone, and recommends the single best purchase.`,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to YAML or JSON state file")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.PersistentFlags().BoolVarP(&nextOnly, "next", "n", false, "Show only the recommended upgrade")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "bubba",
		Short: "Analyze the meat economy",
		Args:  cobra.NoArgs,
		RunE:  runBubba,
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "orion",
		Short: "Analyze the feather economy",
		Args:  cobra.NoArgs,
		RunE:  runOrion,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBubba(cmd *cobra.Command, args []string) error {
	state := bubba.NewState()
	if configFile != "" {
		config, err := models.LoadBubbaConfig(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := models.ValidateBubbaConfig(config); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		state = models.BubbaConfigToState(config)
	}

	sess := bubba.NewSession(state)
	r := report{
		title:        "Bubba",
		currency:     "meat",
		genUnit:      "/min",
		balance:      state.Meat,
		generation:   sess.Generation(),
		target:       sess.Target(),
		timeToTarget: sess.TimeToTarget(),
		analysis:     sess.Analysis(),
		best:         sess.Best(),
	}
	return emit(cmd.OutOrStdout(), r, nil)
}

func runOrion(cmd *cobra.Command, args []string) error {
	state := orion.NewState()
	if configFile != "" {
		config, err := models.LoadOrionConfig(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := models.ValidateOrionConfig(config); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		state = models.OrionConfigToState(config)
	}

	sess := orion.NewSession(state)
	r := report{
		title:        "Orion",
		currency:     "feathers",
		genUnit:      "/s",
		balance:      state.Feathers,
		generation:   sess.Generation(),
		target:       sess.Target(),
		timeToTarget: sess.TimeToTarget(),
		analysis:     sess.Analysis(),
		best:         sess.Best(),
		describe:     true,
	}
	plan := sess.Plan()
	return emit(cmd.OutOrStdout(), r, func(w io.Writer) {
		fmt.Fprintf(w, "🔮 Lookahead: %d purchases before the reset, %s feathers\n",
			len(plan.Steps), format.Number(plan.TotalCost))
	})
}

func emit(w io.Writer, r report, extra func(io.Writer)) error {
	if nextOnly {
		fmt.Fprintln(w, nextLine(r.analysis, r.best))
		return nil
	}

	if !quiet {
		printHeader(w, r)
		if extra != nil {
			extra(w)
		}
		fmt.Fprintln(w)
	}
	if err := printAnalysis(w, r); err != nil {
		return err
	}
	printRecommendation(w, r)
	return nil
}

func printHeader(w io.Writer, r report) {
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Fprintf(w, "\n── %s upgrade advisor ──\n\n", r.title)
	infoColor.Fprintln(w, "📊 Current State:")
	fmt.Fprintf(w, "   Balance:    %s %s\n", format.Number(r.balance), r.currency)
	fmt.Fprintf(w, "   Generation: %s %s%s\n", format.Number(r.generation), r.currency, r.genUnit)
	fmt.Fprintf(w, "🎯 Target: %s at %s (%s)\n",
		r.target.Name, format.Number(r.target.Cost), format.Duration(r.timeToTarget))
}

func printAnalysis(w io.Writer, r report) error {
	header := []string{"", "#", "Upgrade", "Cost", "Time Saved", "Efficiency"}
	if r.describe && !quiet {
		header = append(header, "Effect")
	}
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))

	for _, a := range r.analysis {
		marker := ""
		if a.Index == r.best {
			marker = "✓"
		} else if a.Excluded {
			marker = "-"
		}
		row := []string{
			marker,
			fmt.Sprintf("%d", a.Index),
			a.Name,
			format.Number(a.Cost),
			formatSaved(a.TimeSaved),
			formatEfficiency(a.Efficiency),
		}
		if r.describe && !quiet {
			row = append(row, a.Description)
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func printRecommendation(w io.Writer, r report) {
	if r.best == solver.NoRecommendation {
		color.New(color.FgRed).Fprintln(w, "\n✗ Nothing is worth buying right now")
		return
	}
	a := r.analysis[r.best]
	color.New(color.FgGreen, color.Bold).Fprintf(w, "\n✓ Buy %s for %s %s (saves %s)\n",
		a.Name, format.Number(a.Cost), r.currency, formatSaved(a.TimeSaved))
}

// nextLine is the machine-readable form of the recommendation
func nextLine(analysis []solver.UpgradeAnalysis, best int) string {
	if best == solver.NoRecommendation {
		return "none"
	}
	return fmt.Sprintf("upgrade:%d:%s", best, analysis[best].Name)
}

func formatSaved(seconds float64) string {
	if seconds < 0 {
		return "-" + format.Duration(-seconds)
	}
	if seconds == 0 {
		return "-"
	}
	return format.Duration(seconds)
}

func formatEfficiency(eff float64) string {
	if eff == 0 {
		return "-"
	}
	return fmt.Sprintf("%.3g", eff)
}
