package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/model"
	"github.com/Rory34/retail-rewards/internal/parser"
	"github.com/Rory34/retail-rewards/internal/rewards"
)

type RunRecorder interface {
	Record(ctx context.Context, run *model.CalculationRun) error
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, *model.CalculationRun) error { return nil }

// NopRecorder discards runs; used when the ledger is disabled.
var NopRecorder RunRecorder = nopRecorder{}

type RewardsService struct {
	msgs       *messages.Catalog
	customers  *parser.CustomerParser
	txns       *parser.TransactionParser
	calculator *rewards.Calculator
	recorder   RunRecorder
}

func NewRewardsService(msgs *messages.Catalog, recorder RunRecorder) *RewardsService {
	if recorder == nil {
		recorder = NopRecorder
	}
	return &RewardsService{
		msgs:       msgs,
		customers:  parser.NewCustomerParser(msgs),
		txns:       parser.NewTransactionParser(msgs),
		calculator: rewards.NewCalculator(),
		recorder:   recorder,
	}
}

func (s *RewardsService) Calculate(ctx context.Context, rawCustomers []model.RawCustomer, rawTxns []model.RawTransaction) model.RewardsOutcome {
	start := time.Now()

	customers, customerErrs := s.customers.Parse(rawCustomers)
	txns, txnErrs := s.txns.Parse(rawTxns, customers)

	var outcome model.RewardsOutcome
	if len(customerErrs) > 0 || len(txnErrs) > 0 {
		errs := make([]string, 0, len(customerErrs)+len(txnErrs))
		errs = append(errs, customerErrs...)
		errs = append(errs, txnErrs...)
		outcome = model.RewardsOutcome{Summaries: []model.CustomerRewardSummary{}, Errors: errs}
	} else {
		outcome = model.RewardsOutcome{Summaries: s.summarize(txns, customers), Errors: []string{}}
	}

	log.Info().
		Int("customers", len(rawCustomers)).
		Int("transactions", len(rawTxns)).
		Int("summaries", len(outcome.Summaries)).
		Int("errors", len(outcome.Errors)).
		Dur("duration", time.Since(start)).
		Msg("rewards calculated")

	s.record(ctx, len(rawCustomers), len(rawTxns), txns, outcome)

	return outcome
}

func (s *RewardsService) summarize(txns []model.Transaction, customers []model.Customer) []model.CustomerRewardSummary {
	names := make(map[int]string, len(customers))
	for _, c := range customers {
		if _, seen := names[c.ID]; !seen {
			names[c.ID] = c.Name
		}
	}

	results := s.calculator.Calculate(txns)
	summaries := make([]model.CustomerRewardSummary, 0, len(results))
	for _, r := range results {
		name, ok := names[r.CustomerID]
		if !ok {
			name = s.msgs.Get(messages.CustomerIDNotFound)
		}
		summaries = append(summaries, model.CustomerRewardSummary{
			CustomerID:   r.CustomerID,
			CustomerName: name,
			Month1:       r.Monthly[0],
			Month2:       r.Monthly[1],
			Month3:       r.Monthly[2],
			Total:        r.Total(),
		})
	}
	return summaries
}

func (s *RewardsService) record(ctx context.Context, customerCount, txnCount int, txns []model.Transaction, outcome model.RewardsOutcome) {
	run := &model.CalculationRun{
		Status:           model.RunStatusOK,
		CustomerCount:    customerCount,
		TransactionCount: txnCount,
		ErrorCount:       len(outcome.Errors),
		SummaryCount:     len(outcome.Summaries),
		TotalPoints:      outcome.TotalPoints(),
	}
	if outcome.HasErrors() {
		run.Status = model.RunStatusRejected
	}
	if len(txns) > 0 && !outcome.HasErrors() {
		earliest := txns[0].Date
		for _, t := range txns[1:] {
			if t.Date.Before(earliest) {
				earliest = t.Date
			}
		}
		run.EarliestDate = &earliest
	}

	if err := s.recorder.Record(ctx, run); err != nil {
		log.Warn().Err(err).Str("status", run.Status).Msg("failed to record calculation run")
	}
}
