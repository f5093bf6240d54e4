package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffscottward/trade-calculator/src/dbutils"
	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/eventservices"
	"github.com/jeffscottward/trade-calculator/src/scanner"
	"github.com/jeffscottward/trade-calculator/src/screener"
	"github.com/jeffscottward/trade-calculator/src/utils"
)

type RunArgs struct {
	GoEnv      string
	ConfigPath string
	ReportDate string
	OutCsv     string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scanner/main.go --date 2026-09-02",
	Short: "Scan one day of the earnings calendar for calendar-spread candidates",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		reportDate, err := cmd.Flags().GetString("date")
		if err != nil {
			log.Fatalf("error getting date: %v", err)
		}

		outCsv, err := cmd.Flags().GetString("out-csv")
		if err != nil {
			log.Fatalf("error getting out-csv: %v", err)
		}

		if err := Run(RunArgs{
			GoEnv:      goEnv,
			ConfigPath: configPath,
			ReportDate: reportDate,
			OutCsv:     outCsv,
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

	polygonApiKey := os.Getenv("POLYGON_API_KEY")
	if polygonApiKey == "" {
		log.Fatalf("missing POLYGON_API_KEY environment variable")
	}

	tradierExpirationsURL := os.Getenv("TRADIER_EXPIRATIONS_URL")
	if tradierExpirationsURL == "" {
		log.Fatalf("missing TRADIER_EXPIRATIONS_URL environment variable")
	}

	tradierChainsURL := os.Getenv("TRADIER_CHAINS_URL")
	if tradierChainsURL == "" {
		log.Fatalf("missing TRADIER_CHAINS_URL environment variable")
	}

	tradierBearerToken := os.Getenv("TRADIER_BEARER_TOKEN")
	if tradierBearerToken == "" {
		log.Fatalf("missing TRADIER_BEARER_TOKEN environment variable")
	}

	reportDate := time.Now().UTC().AddDate(0, 0, 1)
	if args.ReportDate != "" {
		reportDate, err = time.Parse("2006-01-02", args.ReportDate)
		if err != nil {
			return fmt.Errorf("failed to parse date %q: %w", args.ReportDate, err)
		}
	}

	var sink scanner.ResultSink
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := dbutils.InitPostgresWithUrl(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to postgres: %w", err)
		}

		sink = eventservices.NewTradeRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, scan results will not be persisted")
	}

	calendar := eventservices.NewNasdaqCalendarClient()
	prices := eventservices.NewPolygonPriceFetcher(polygonApiKey)
	chains := eventservices.NewTradierChainFetcher(tradierExpirationsURL, tradierChainsURL, tradierBearerToken)
	metrics := eventservices.NewMetricsService(prices, chains)

	candidates, err := scanner.NewScanner(calendar, metrics, sink, config).Scan(context.Background(), reportDate)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	printCandidates(candidates)

	if args.OutCsv != "" {
		if err := utils.ExportCsv(args.OutCsv, toExportRows(candidates)); err != nil {
			return fmt.Errorf("failed to export csv: %w", err)
		}

		log.Infof("Wrote %d candidates to %s", len(candidates), args.OutCsv)
	}

	return nil
}

type candidateExportRow struct {
	Symbol             string  `csv:"symbol"`
	CompanyName        string  `csv:"company_name"`
	ReportDate         string  `csv:"report_date"`
	Recommendation     string  `csv:"recommendation"`
	PriorityScore      float64 `csv:"priority_score"`
	AvgVolume30d       float64 `csv:"avg_volume_30d"`
	IVRVRatio          float64 `csv:"iv_rv_ratio"`
	TermStructureSlope float64 `csv:"term_structure_slope"`
	MarketCap          float64 `csv:"market_cap"`
}

func toExportRows(candidates []screener.Candidate) []candidateExportRow {
	rows := make([]candidateExportRow, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, candidateExportRow{
			Symbol:             c.Event.Symbol.String(),
			CompanyName:        c.Event.CompanyName,
			ReportDate:         c.Event.ReportDate.Format("2006-01-02"),
			Recommendation:     string(c.Qualification.Recommendation),
			PriorityScore:      c.Score.PriorityScore,
			AvgVolume30d:       c.Metrics.AvgVolume30d,
			IVRVRatio:          c.Metrics.IVRVRatio,
			TermStructureSlope: c.Metrics.TermStructureSlope,
			MarketCap:          c.Event.MarketCap,
		})
	}

	return rows
}

func printCandidates(candidates []screener.Candidate) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Recommendation", "Score", "IV/RV", "Slope", "Avg Volume", "Market Cap"})

	for _, c := range candidates {
		table.Append([]string{
			c.Event.Symbol.String(),
			string(c.Qualification.Recommendation),
			fmt.Sprintf("%.2f", c.Score.PriorityScore),
			fmt.Sprintf("%.2f", c.Metrics.IVRVRatio),
			fmt.Sprintf("%.4f", c.Metrics.TermStructureSlope),
			fmt.Sprintf("%.0f", c.Metrics.AvgVolume30d),
			fmt.Sprintf("%.0f", c.Event.MarketCap),
		})
	}

	table.Render()
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to the strategy config yaml.")
	runCmd.PersistentFlags().String("date", "", "The earnings report date to scan, YYYY-MM-DD. Defaults to tomorrow.")
	runCmd.PersistentFlags().String("out-csv", "", "Optional path to export the ranked candidates as csv.")

	cobra.CheckErr(runCmd.Execute())
}
