package dto

import "github.com/Rory34/retail-rewards/internal/model"

type CustomerSummaryResponse struct {
	CustomerID    int    `json:"customerId"`
	CustomerName  string `json:"customerName"`
	Month1Rewards int    `json:"month1Rewards"`
	Month2Rewards int    `json:"month2Rewards"`
	Month3Rewards int    `json:"month3Rewards"`
	TotalRewards  int    `json:"totalRewards"`
}

type RewardsResultResponse struct {
	CustomerSummaries []CustomerSummaryResponse `json:"customerSummaries"`
	Errors            []string                  `json:"errors"`
}

func NewRewardsResultResponse(outcome model.RewardsOutcome) RewardsResultResponse {
	summaries := make([]CustomerSummaryResponse, len(outcome.Summaries))
	for i, s := range outcome.Summaries {
		summaries[i] = CustomerSummaryResponse{
			CustomerID:    s.CustomerID,
			CustomerName:  s.CustomerName,
			Month1Rewards: s.Month1,
			Month2Rewards: s.Month2,
			Month3Rewards: s.Month3,
			TotalRewards:  s.Total,
		}
	}

	errs := outcome.Errors
	if errs == nil {
		errs = []string{}
	}
	return RewardsResultResponse{CustomerSummaries: summaries, Errors: errs}
}

func ErrorResult(messages ...string) RewardsResultResponse {
	return RewardsResultResponse{
		CustomerSummaries: []CustomerSummaryResponse{},
		Errors:            messages,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}
