package parser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/model"
)

const (
	DateLayout = "2006-01-02"

	// MaxSpanMonths is the number of calendar months a batch may cover,
	// counted from the first day of the earliest transaction's month.
	MaxSpanMonths = 3
)

type validator struct {
	fails func(model.RawTransaction) bool
	key   string
}

// Evaluated in order; error lines follow this order.
var transactionValidators = []validator{
	{fails: hasInvalidID, key: messages.TransactionHasInvalidID},
	{fails: hasInvalidDate, key: messages.TransactionHasInvalidDate},
	{fails: hasInvalidCustomerID, key: messages.TransactionHasInvalidCustomerID},
	{fails: hasInvalidValue, key: messages.TransactionHasInvalidValue},
	{fails: hasNegativeValue, key: messages.TransactionHasNegativeValue},
}

type TransactionParser struct {
	msgs *messages.Catalog
}

func NewTransactionParser(msgs *messages.Catalog) *TransactionParser {
	return &TransactionParser{msgs: msgs}
}

// Parse validates every record against the customers and converts the batch.
// An empty customer list disables the customer cross-reference check.
func (p *TransactionParser) Parse(raw []model.RawTransaction, customers []model.Customer) ([]model.Transaction, []string) {
	if len(raw) == 0 {
		return []model.Transaction{}, []string{}
	}

	known := make(map[int]struct{}, len(customers))
	for _, c := range customers {
		known[c.ID] = struct{}{}
	}

	errs := []string{}
	for _, rt := range raw {
		errs = append(errs, p.validate(rt, known)...)
	}
	if len(errs) > 0 {
		return []model.Transaction{}, errs
	}

	txns := make([]model.Transaction, 0, len(raw))
	for _, rt := range raw {
		txns = append(txns, convert(rt))
	}

	if SpansMoreThanWindow(txns) {
		return []model.Transaction{}, []string{p.msgs.Get(messages.TransactionsSpanMoreThanThreeMonths)}
	}
	return txns, []string{}
}

func (p *TransactionParser) validate(rt model.RawTransaction, known map[int]struct{}) []string {
	var errs []string
	for _, v := range transactionValidators {
		if v.fails(rt) {
			errs = append(errs, p.line(rt, v.key))
		}
	}

	if len(known) > 0 {
		if id, ok := parseInt(rt.CustomerID); ok {
			if _, found := known[id]; !found {
				errs = append(errs, p.line(rt, messages.TransactionHasNotFoundCustomerID))
			}
		}
	}
	return errs
}

func (p *TransactionParser) line(rt model.RawTransaction, key string) string {
	return rt.String() + " : " + p.msgs.Get(key)
}

// SpansMoreThanWindow reports whether the latest transaction falls after the
// last day of the MaxSpanMonths-month window opened by the earliest one.
func SpansMoreThanWindow(txns []model.Transaction) bool {
	if len(txns) == 0 {
		return false
	}

	earliest, latest := txns[0].Date, txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
		if t.Date.After(latest) {
			latest = t.Date
		}
	}

	windowEnd := model.StartOfMonth(earliest).AddDate(0, MaxSpanMonths, -1)
	return latest.After(windowEnd)
}

func convert(rt model.RawTransaction) model.Transaction {
	id, _ := parseInt(rt.ID)
	date, _ := parseDate(rt.Date)
	customerID, _ := parseInt(rt.CustomerID)
	value, _ := parseDecimal(rt.Value)
	return model.Transaction{ID: id, Date: date, CustomerID: customerID, Value: value}
}

func hasInvalidID(rt model.RawTransaction) bool {
	_, ok := parseInt(rt.ID)
	return !ok
}

func hasInvalidDate(rt model.RawTransaction) bool {
	_, ok := parseDate(rt.Date)
	return !ok
}

func hasInvalidCustomerID(rt model.RawTransaction) bool {
	_, ok := parseInt(rt.CustomerID)
	return !ok
}

func hasInvalidValue(rt model.RawTransaction) bool {
	_, ok := parseDecimal(rt.Value)
	return !ok
}

func hasNegativeValue(rt model.RawTransaction) bool {
	v, ok := parseDecimal(rt.Value)
	return ok && v.IsNegative()
}

func parseDate(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseDecimal accepts plain decimal values with surrounding whitespace
// trimmed. Magnitudes above model.MaxTransactionValue are invalid.
func parseDecimal(s *string) (decimal.Decimal, bool) {
	if s == nil {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return decimal.Zero, false
	}
	if v.Abs().GreaterThan(model.MaxTransactionValue) {
		return decimal.Zero, false
	}
	return v, true
}
