package dto

import "github.com/Rory34/retail-rewards/internal/model"

type CustomerRequest struct {
	ID   Text `json:"id"`
	Name Text `json:"name"`
}

type TransactionRequest struct {
	ID         Text `json:"id"`
	Date       Text `json:"date"`
	CustomerID Text `json:"customerId"`
	Value      Text `json:"value"`
}

// CalculateRewardsRequest keeps nil slices for null or missing lists so they
// can be told apart from empty ones.
type CalculateRewardsRequest struct {
	Customers    []CustomerRequest    `json:"customers"`
	Transactions []TransactionRequest `json:"transactions"`
}

// HasRequiredLists reports whether both lists are present and transactions
// are not submitted without customers.
func (r *CalculateRewardsRequest) HasRequiredLists() bool {
	if r.Customers == nil || r.Transactions == nil {
		return false
	}
	return len(r.Transactions) == 0 || len(r.Customers) > 0
}

func (r *CalculateRewardsRequest) RawCustomers() []model.RawCustomer {
	raw := make([]model.RawCustomer, len(r.Customers))
	for i, c := range r.Customers {
		raw[i] = model.RawCustomer{ID: c.ID.Ptr(), Name: c.Name.Ptr()}
	}
	return raw
}

func (r *CalculateRewardsRequest) RawTransactions() []model.RawTransaction {
	raw := make([]model.RawTransaction, len(r.Transactions))
	for i, t := range r.Transactions {
		raw[i] = model.RawTransaction{
			ID:         t.ID.Ptr(),
			Date:       t.Date.Ptr(),
			CustomerID: t.CustomerID.Ptr(),
			Value:      t.Value.Ptr(),
		}
	}
	return raw
}
