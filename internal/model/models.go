package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawCustomer is a customer record as submitted, before validation.
// Absent fields are nil.
type RawCustomer struct {
	ID   *string
	Name *string
}

func (c RawCustomer) String() string {
	return fmt.Sprintf("Customer{id='%s', name='%s'}", orNull(c.ID), orNull(c.Name))
}

type Customer struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RawTransaction is a transaction record as submitted, before validation.
type RawTransaction struct {
	ID         *string
	Date       *string
	CustomerID *string
	Value      *string
}

func (t RawTransaction) String() string {
	return fmt.Sprintf("RetailTransaction{id='%s', date='%s', customerId='%s', value='%s'}",
		orNull(t.ID), orNull(t.Date), orNull(t.CustomerID), orNull(t.Value))
}

type Transaction struct {
	ID         int
	Date       time.Time
	CustomerID int
	Value      decimal.Decimal
}

// MaxTransactionValue is the largest accepted transaction value. Larger
// amounts are rejected as invalid so points always fit in an int.
var MaxTransactionValue = decimal.NewFromInt(math.MaxInt32)

// MonthlyRewards holds points for the three consecutive calendar months
// starting at the month of the earliest transaction.
type MonthlyRewards [3]int

func (m MonthlyRewards) Total() int {
	return m[0] + m[1] + m[2]
}

type RewardsResult struct {
	CustomerID int
	Monthly    MonthlyRewards
}

func (r RewardsResult) Total() int {
	return r.Monthly.Total()
}

type CustomerRewardSummary struct {
	CustomerID   int
	CustomerName string
	Month1       int
	Month2       int
	Month3       int
	Total        int
}

// RewardsOutcome carries either summaries or errors, never both.
type RewardsOutcome struct {
	Summaries []CustomerRewardSummary
	Errors    []string
}

func (o RewardsOutcome) HasErrors() bool {
	return len(o.Errors) > 0
}

func (o RewardsOutcome) TotalPoints() int {
	total := 0
	for _, s := range o.Summaries {
		total += s.Total
	}
	return total
}

const (
	RunStatusOK       = "ok"
	RunStatusRejected = "rejected"
)

type CalculationRun struct {
	ID               uuid.UUID  `json:"id"`
	Status           string     `json:"status"`
	CustomerCount    int        `json:"customer_count"`
	TransactionCount int        `json:"transaction_count"`
	ErrorCount       int        `json:"error_count"`
	SummaryCount     int        `json:"summary_count"`
	TotalPoints      int        `json:"total_points"`
	EarliestDate     *time.Time `json:"earliest_date,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type RunStats struct {
	TotalRuns    int `json:"total_runs"`
	RejectedRuns int `json:"rejected_runs"`
	TotalPoints  int `json:"total_points"`
}

// StrPtr returns a pointer to s; handy when building raw records.
func StrPtr(s string) *string {
	return &s
}

func orNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}

// StartOfMonth returns midnight UTC on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
