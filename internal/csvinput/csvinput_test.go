package csvinput

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rory34/retail-rewards/internal/model"
)

func TestReadCustomers(t *testing.T) {
	t.Run("rows", func(t *testing.T) {
		customers, err := ReadCustomers(strings.NewReader("id,name\n100,Customer 1\n,Nameless\n101,\n"))
		require.NoError(t, err)
		require.Len(t, customers, 3)
		assert.Equal(t, "Customer{id='100', name='Customer 1'}", customers[0].String())
		assert.Nil(t, customers[1].ID, "empty cell is absent")
		assert.Equal(t, "Nameless", *customers[1].Name)
		assert.Nil(t, customers[2].Name)
	})

	t.Run("column order does not matter", func(t *testing.T) {
		customers, err := ReadCustomers(strings.NewReader("name,id\nA,1\n"))
		require.NoError(t, err)
		assert.Equal(t, []model.RawCustomer{{ID: model.StrPtr("1"), Name: model.StrPtr("A")}}, customers)
	})

	t.Run("header only", func(t *testing.T) {
		customers, err := ReadCustomers(strings.NewReader("id,name\n"))
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("empty file", func(t *testing.T) {
		customers, err := ReadCustomers(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, customers)
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := ReadCustomers(strings.NewReader("id,name\n1,A,extra\n"))
		assert.Error(t, err)
	})
}

func TestReadTransactions(t *testing.T) {
	txns, err := ReadTransactions(strings.NewReader(
		"id,date,customerId,value\n" +
			"1001,2023-11-03,100,120\n" +
			"1002,,100,10.5-\n"))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "RetailTransaction{id='1001', date='2023-11-03', customerId='100', value='120'}", txns[0].String())
	assert.Equal(t, "RetailTransaction{id='1002', date='null', customerId='100', value='10.5-'}", txns[1].String())
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	customersPath := filepath.Join(dir, "customers.csv")
	txnsPath := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(customersPath, []byte("id,name\n1,A\n"), 0o600))
	require.NoError(t, os.WriteFile(txnsPath, []byte("id,date,customerId,value\n1,2024-01-01,1,60\n"), 0o600))

	customers, err := ReadCustomersFile(customersPath)
	require.NoError(t, err)
	assert.Len(t, customers, 1)

	txns, err := ReadTransactionsFile(txnsPath)
	require.NoError(t, err)
	assert.Len(t, txns, 1)

	_, err = ReadCustomersFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorContains(t, err, "open customers file")
}
