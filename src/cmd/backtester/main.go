package main

import (
	"fmt"
	"math"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffscottward/trade-calculator/src/backtester"
	"github.com/jeffscottward/trade-calculator/src/dbutils"
	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/eventservices"
	"github.com/jeffscottward/trade-calculator/src/utils"
)

type RunArgs struct {
	GoEnv        string
	ConfigPath   string
	InCsv        string
	OutCsv       string
	LookbackDays int
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/backtester/main.go --in-csv candidates.csv",
	Short: "Replay historical earnings candidates through the spread simulator",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		inCsv, err := cmd.Flags().GetString("in-csv")
		if err != nil {
			log.Fatalf("error getting in-csv: %v", err)
		}

		outCsv, err := cmd.Flags().GetString("out-csv")
		if err != nil {
			log.Fatalf("error getting out-csv: %v", err)
		}

		lookbackDays, err := cmd.Flags().GetInt("lookback-days")
		if err != nil {
			log.Fatalf("error getting lookback-days: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:        goEnv,
			ConfigPath:   configPath,
			InCsv:        inCsv,
			OutCsv:       outCsv,
			LookbackDays: lookbackDays,
		}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	config, err := eventmodels.LoadStrategyConfig(args.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load strategy config: %w", err)
	}

	dtos, err := utils.ImportCsv[eventmodels.BacktestCandidateDTO](args.InCsv)
	if err != nil {
		return fmt.Errorf("failed to import candidates: %w", err)
	}

	var candidates []eventmodels.BacktestCandidate
	for _, dto := range dtos {
		candidate, err := dto.ToBacktestCandidate()
		if err != nil {
			log.Warnf("skipping candidate row: %v", err)
			continue
		}

		candidates = append(candidates, candidate)
	}

	log.Infof("Loaded %d candidates from %s", len(candidates), args.InCsv)

	backtest := backtester.NewBacktest(config)
	trades := backtest.Run(candidates)

	metrics := backtest.Performance(args.LookbackDays)
	printPerformance(metrics)

	if args.OutCsv != "" {
		if err := utils.ExportCsv(args.OutCsv, trades); err != nil {
			return fmt.Errorf("failed to export trades: %w", err)
		}

		log.Infof("Wrote %d trades to %s", len(trades), args.OutCsv)
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := dbutils.InitPostgresWithUrl(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}

		if err := eventservices.NewTradeRepository(db).SaveBacktestTrades(trades); err != nil {
			return fmt.Errorf("failed to persist trades: %w", err)
		}

		log.Infof("Persisted %d trades", len(trades))
	}

	return nil
}

func printPerformance(metrics backtester.PerformanceMetrics) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Metric", "Value"})

	profitFactor := fmt.Sprintf("%.2f", metrics.ProfitFactor)
	if math.IsInf(metrics.ProfitFactor, 1) {
		profitFactor = "inf"
	}

	rows := [][]string{
		{"Total Trades", fmt.Sprintf("%d", metrics.TotalTrades)},
		{"Starting Capital", fmt.Sprintf("%.2f", metrics.StartingCapital)},
		{"Ending Capital", fmt.Sprintf("%.2f", metrics.EndingCapital)},
		{"Total P&L", fmt.Sprintf("%.2f", metrics.TotalPnL)},
		{"Total Return %", fmt.Sprintf("%.2f", metrics.TotalReturnPct)},
		{"Win Rate %", fmt.Sprintf("%.2f", metrics.WinRate)},
		{"Avg Win", fmt.Sprintf("%.2f", metrics.AvgWin)},
		{"Avg Loss", fmt.Sprintf("%.2f", metrics.AvgLoss)},
		{"Profit Factor", profitFactor},
		{"Sharpe Ratio", fmt.Sprintf("%.2f", metrics.SharpeRatio)},
		{"Max Drawdown %", fmt.Sprintf("%.2f", metrics.MaxDrawdownPct)},
	}

	for _, row := range rows {
		table.Append(row)
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to the strategy config yaml.")
	runCmd.PersistentFlags().String("in-csv", "", "Path to the historical candidates csv.")
	runCmd.PersistentFlags().String("out-csv", "", "Optional path to export the simulated trades as csv.")
	runCmd.PersistentFlags().Int("lookback-days", 252, "Calendar span of the candidate set, used to scale the sharpe ratio.")

	runCmd.MarkPersistentFlagRequired("in-csv")

	cobra.CheckErr(runCmd.Execute())
}
