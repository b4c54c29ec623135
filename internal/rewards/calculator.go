package rewards

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rory34/retail-rewards/internal/model"
)

const (
	SinglePointsThreshold = 50
	DoublePointsThreshold = 100
)

var (
	singleThreshold = decimal.NewFromInt(SinglePointsThreshold)
	doubleThreshold = decimal.NewFromInt(DoublePointsThreshold)
)

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate buckets each customer's points into the three calendar months
// starting at the earliest transaction's month. Transactions are expected to
// have passed span validation; anything later than the second month lands in
// the last bucket. Results are ordered by customer id.
func (c *Calculator) Calculate(txns []model.Transaction) []model.RewardsResult {
	if len(txns) == 0 {
		return []model.RewardsResult{}
	}

	secondMonth := model.StartOfMonth(earliestDate(txns)).AddDate(0, 1, 0)
	thirdMonth := secondMonth.AddDate(0, 1, 0)

	byCustomer := make(map[int]*model.MonthlyRewards)
	for _, t := range txns {
		bucket, ok := byCustomer[t.CustomerID]
		if !ok {
			bucket = &model.MonthlyRewards{}
			byCustomer[t.CustomerID] = bucket
		}
		bucket[monthIndex(t.Date, secondMonth, thirdMonth)] += Points(t.Value)
	}

	results := make([]model.RewardsResult, 0, len(byCustomer))
	for id, bucket := range byCustomer {
		results = append(results, model.RewardsResult{CustomerID: id, Monthly: *bucket})
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CustomerID < results[j].CustomerID
	})

	return results
}

// Points earns one point per whole dollar between 50 and 100 and two per
// whole dollar above 100. Cents are truncated first. Values above
// model.MaxTransactionValue earn the points of that maximum.
func Points(value decimal.Decimal) int {
	if value.LessThan(singleThreshold) {
		return 0
	}
	if value.GreaterThan(model.MaxTransactionValue) {
		value = model.MaxTransactionValue
	}

	wholeDollars := int(value.IntPart())
	if value.GreaterThan(doubleThreshold) {
		return wholeDollars*2 - DoublePointsThreshold - SinglePointsThreshold
	}
	return wholeDollars - SinglePointsThreshold
}

func monthIndex(date, secondMonth, thirdMonth time.Time) int {
	switch {
	case date.Before(secondMonth):
		return 0
	case date.Before(thirdMonth):
		return 1
	default:
		return 2
	}
}

func earliestDate(txns []model.Transaction) time.Time {
	earliest := txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
	}
	return earliest
}
