// Package csvinput reads customer and transaction lists from CSV files for
// the command line tool. Cells are kept as raw text so the parsers report
// the same validation errors as the HTTP API; an empty cell is an absent
// field.
package csvinput

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/Rory34/retail-rewards/internal/model"
)

type customerRow struct {
	ID   string `csv:"id"`
	Name string `csv:"name"`
}

type transactionRow struct {
	ID         string `csv:"id"`
	Date       string `csv:"date"`
	CustomerID string `csv:"customerId"`
	Value      string `csv:"value"`
}

func ReadCustomers(r io.Reader) ([]model.RawCustomer, error) {
	var rows []*customerRow
	if err := unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read customers csv: %w", err)
	}

	customers := make([]model.RawCustomer, 0, len(rows))
	for _, row := range rows {
		customers = append(customers, model.RawCustomer{
			ID:   cell(row.ID),
			Name: cell(row.Name),
		})
	}
	return customers, nil
}

func ReadTransactions(r io.Reader) ([]model.RawTransaction, error) {
	var rows []*transactionRow
	if err := unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("read transactions csv: %w", err)
	}

	txns := make([]model.RawTransaction, 0, len(rows))
	for _, row := range rows {
		txns = append(txns, model.RawTransaction{
			ID:         cell(row.ID),
			Date:       cell(row.Date),
			CustomerID: cell(row.CustomerID),
			Value:      cell(row.Value),
		})
	}
	return txns, nil
}

func ReadCustomersFile(path string) ([]model.RawCustomer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open customers file: %w", err)
	}
	defer f.Close()
	return ReadCustomers(f)
}

func ReadTransactionsFile(path string) ([]model.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions file: %w", err)
	}
	defer f.Close()
	return ReadTransactions(f)
}

// unmarshal treats a completely empty file as an empty list.
func unmarshal(r io.Reader, out interface{}) error {
	err := gocsv.Unmarshal(r, out)
	if errors.Is(err, gocsv.ErrEmptyCSVFile) {
		return nil
	}
	return err
}

func cell(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
