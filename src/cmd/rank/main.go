package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeffscottward/trade-calculator/src/dbutils"
	"github.com/jeffscottward/trade-calculator/src/eventservices"
	"github.com/jeffscottward/trade-calculator/src/utils"
)

type RunArgs struct {
	GoEnv    string
	ScanDate string
}

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/rank/main.go --scan-date 2026-09-01",
	Short: "Show the actionable candidates from a previous scan, best first",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		scanDate, err := cmd.Flags().GetString("scan-date")
		if err != nil {
			log.Fatalf("error getting scan-date: %v", err)
		}

		if err := Run(RunArgs{GoEnv: goEnv, ScanDate: scanDate}); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func Run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatalf("missing DATABASE_URL environment variable")
	}

	scanDate := time.Now().UTC()
	if args.ScanDate != "" {
		var err error
		scanDate, err = time.Parse("2006-01-02", args.ScanDate)
		if err != nil {
			return fmt.Errorf("failed to parse scan-date %q: %w", args.ScanDate, err)
		}
	}

	db, err := dbutils.InitPostgresWithUrl(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}

	records, err := eventservices.NewTradeRepository(db).FetchRecommendations(scanDate)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}

	if len(records) == 0 {
		log.Infof("No actionable candidates for %s", scanDate.Format("2006-01-02"))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Symbol", "Earnings Date", "Recommendation", "Score", "IV/RV", "Slope"})

	for _, record := range records {
		table.Append([]string{
			record.Symbol,
			record.EarningsDate.Format("2006-01-02"),
			record.Recommendation,
			fmt.Sprintf("%.2f", record.PriorityScore),
			fmt.Sprintf("%.2f", record.IVRVRatio),
			fmt.Sprintf("%.4f", record.TermStructureSlope),
		})
	}

	table.Render()

	return nil
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("scan-date", "", "The scan day to show, YYYY-MM-DD. Defaults to today.")

	cobra.CheckErr(runCmd.Execute())
}
