package scanner

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jeffscottward/trade-calculator/src/eventmodels"
	"github.com/jeffscottward/trade-calculator/src/eventservices"
	"github.com/jeffscottward/trade-calculator/src/screener"
)

// ResultSink receives the qualified scan results. TradeRepository satisfies
// it; the scanner command can also run without persistence.
type ResultSink interface {
	SaveEarningsEvent(record *eventmodels.EarningsEventRecord) error
}

// Scanner walks one day of the earnings calendar, computes the metrics
// snapshot for each reporting underlying, runs the qualification gates and
// the priority scorer, and returns the candidates ranked best first.
type Scanner struct {
	calendar   eventmodels.EarningsCalendarFetcher
	metrics    *eventservices.MetricsService
	sink       ResultSink
	config     eventmodels.StrategyConfigYAML
	thresholds screener.Thresholds
	policy     screener.RecommendPolicy

	// sleep between symbols, overridable in tests
	pause func(time.Duration)
}

func NewScanner(calendar eventmodels.EarningsCalendarFetcher, metrics *eventservices.MetricsService, sink ResultSink, config eventmodels.StrategyConfigYAML) *Scanner {
	return &Scanner{
		calendar:   calendar,
		metrics:    metrics,
		sink:       sink,
		config:     config,
		thresholds: screener.NewThresholds(config),
		policy:     screener.RecommendPolicy(config.RecommendPolicy),
		pause:      time.Sleep,
	}
}

// Scan evaluates every earnings event reporting on reportDate and returns
// the ranked candidates. A symbol whose data cannot be fetched is logged
// and skipped; only calendar-level failures abort the scan.
func (s *Scanner) Scan(ctx context.Context, reportDate time.Time) ([]screener.Candidate, error) {
	events, err := s.calendar.FetchEarningsCalendar(ctx, reportDate)
	if err != nil {
		return nil, fmt.Errorf("Scanner: Scan: failed to fetch earnings calendar: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("Scanner: Scan: %s: %w", reportDate.Format("2006-01-02"), eventmodels.ErrNoEarningsEvents)
	}

	scanDate := time.Now().UTC()
	delay := time.Duration(s.config.ScanDelaySeconds) * time.Second

	var candidates []screener.Candidate
	for i, event := range events {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i > 0 && delay > 0 {
			s.pause(delay)
		}

		candidate, err := s.evaluate(ctx, event, scanDate)
		if err != nil {
			log.Warnf("Scanner: skipping %s: %v", event.Symbol, err)
			continue
		}

		log.Infof("%s: %s (score %.2f): %s", event.Symbol, candidate.Qualification.Recommendation, candidate.Score.PriorityScore, candidate.Qualification.Reason)

		candidates = append(candidates, candidate)
	}

	return screener.Rank(candidates), nil
}

func (s *Scanner) evaluate(ctx context.Context, event eventmodels.EarningsEvent, scanDate time.Time) (screener.Candidate, error) {
	if err := event.Validate(); err != nil {
		return screener.Candidate{}, err
	}

	metrics, _, err := s.metrics.Compute(ctx, event.Symbol, scanDate)
	if err != nil {
		return screener.Candidate{}, err
	}

	qualification := screener.Qualify(metrics, s.thresholds, s.policy)
	score := screener.ScoreMetrics(metrics, event.MarketCap, 0)

	candidate := screener.Candidate{
		Event:         event,
		Metrics:       metrics,
		Qualification: qualification,
		Score:         score,
	}

	if s.sink != nil && qualification.Evaluated {
		if err := s.sink.SaveEarningsEvent(newEarningsEventRecord(candidate, scanDate)); err != nil {
			log.Errorf("Scanner: failed to persist %s: %v", event.Symbol, err)
		}
	}

	return candidate, nil
}

func newEarningsEventRecord(c screener.Candidate, scanDate time.Time) *eventmodels.EarningsEventRecord {
	return &eventmodels.EarningsEventRecord{
		Symbol:             c.Event.Symbol.String(),
		CompanyName:        c.Event.CompanyName,
		EarningsDate:       c.Event.ReportDate,
		ReportTime:         c.Event.ReportTime,
		ScanDate:           scanDate,
		AvgVolume30d:       c.Metrics.AvgVolume30d,
		YangZhangVol:       c.Metrics.YangZhangVol,
		IVRVRatio:          c.Metrics.IVRVRatio,
		TermStructureSlope: c.Metrics.TermStructureSlope,
		MarketCap:          c.Event.MarketCap,
		Recommendation:     string(c.Qualification.Recommendation),
		PriorityScore:      c.Score.PriorityScore,
		IVRVScore:          c.Score.IVRVScore,
		TermSlopeScore:     c.Score.TermSlopeScore,
		LiquidityScore:     c.Score.LiquidityScore,
		MarketCapScore:     c.Score.MarketCapScore,
	}
}
