package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lexsplit/pdgo/internal/calculation"
	"github.com/lexsplit/pdgo/internal/compare"
	"github.com/lexsplit/pdgo/internal/config"
	"github.com/lexsplit/pdgo/internal/jurisdiction"
	"github.com/lexsplit/pdgo/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "pdgo %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "pdgo",
	Short: "Property Division Calculator CLI",
	Long:  "Marital property division calculator for divorce settlement analysis",
}

// loadTable resolves the jurisdiction rule table, preferring an override file
// when one is supplied.
func loadTable(cmd *cobra.Command) (*jurisdiction.Table, error) {
	tableFile, _ := cmd.Flags().GetString("jurisdiction-table")
	if tableFile == "" {
		return jurisdiction.NewDefaultTable(), nil
	}
	table, err := jurisdiction.LoadTableFromFile(tableFile)
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded jurisdiction table %s (version %s)\n", tableFile, table.Version())
	return table, nil
}

func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	table, err := loadTable(cmd)
	if err != nil {
		return nil, err
	}
	engine := calculation.NewEngine(table)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate a property division",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := engine.Calculate(input)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		return output.NewReportGenerator(os.Stdout).GenerateReport(result, format)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the division across multiple jurisdictions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		codesFlag, _ := cmd.Flags().GetString("jurisdictions")
		codes := strings.Split(codesFlag, ",")
		for i := range codes {
			codes[i] = strings.TrimSpace(codes[i])
		}

		compSet, err := compare.NewCompareEngine(engine).Compare(input, codes)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "table", "console":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "json":
			s, err := (&compare.JSONFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Println(s)
		case "csv":
			s, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				return err
			}
			fmt.Print(s)
		default:
			return fmt.Errorf("unsupported format: %s", format)
		}
		return nil
	},
}

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity [input-file]",
	Short: "Show each statutory factor's marginal effect on the split",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		input, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		analysis, err := engine.AnalyzeFactorSensitivity(input)
		if err != nil {
			return err
		}

		fmt.Printf("Factor sensitivity for %s (base factor %s, spouse1 share %s)\n",
			analysis.Jurisdiction,
			analysis.BaseFactor.StringFixed(4),
			output.FormatCurrency(analysis.BaseShare1))
		if len(analysis.Results) == 0 {
			fmt.Println("No active factors; the split does not depend on special circumstances.")
			return nil
		}
		for _, r := range analysis.Results {
			fmt.Printf("  %-24s weight %s  without it: factor %s, spouse1 share %s (delta %s)\n",
				r.FactorKey,
				r.Weight.StringFixed(2),
				r.AdjustedFactor.StringFixed(4),
				output.FormatCurrency(r.AdjustedShare1),
				output.FormatCurrency(r.ShareDelta))
		}
		return nil
	},
}

var regimesCmd = &cobra.Command{
	Use:   "regimes [jurisdiction]",
	Short: "List jurisdiction division regimes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			entry, err := table.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): %s distribution\n", strings.ToUpper(args[0]), entry.Name, entry.Regime)
			return nil
		}

		fmt.Printf("Jurisdiction table version %s\n", table.Version())
		for _, code := range table.Codes() {
			entry, _ := table.Lookup(code)
			fmt.Printf("  %-4s %-24s %s\n", code, entry.Name, entry.Regime)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("jurisdiction-table", "", "Path to a jurisdiction rule table override (YAML)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")

	calculateCmd.Flags().String("format", "console", "Output format: console, json, or csv")
	compareCmd.Flags().String("format", "table", "Output format: table, json, or csv")
	compareCmd.Flags().String("jurisdictions", "", "Comma-separated jurisdiction codes (first is the base)")
	_ = compareCmd.MarkFlagRequired("jurisdictions")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sensitivityCmd)
	rootCmd.AddCommand(regimesCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
