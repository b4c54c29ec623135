package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/model"
)

func rawCustomer(id, name *string) model.RawCustomer {
	return model.RawCustomer{ID: id, Name: name}
}

var s = model.StrPtr

func TestCustomerParser_Parse(t *testing.T) {
	p := NewCustomerParser(messages.Default())

	t.Run("empty input", func(t *testing.T) {
		customers, errs := p.Parse(nil)
		assert.Empty(t, customers)
		assert.Empty(t, errs)
		assert.NotNil(t, customers)
		assert.NotNil(t, errs)
	})

	t.Run("one valid customer", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{rawCustomer(s("101"), s("Customer 1"))})
		assert.Empty(t, errs)
		require.Len(t, customers, 1)
		assert.Equal(t, model.Customer{ID: 101, Name: "Customer 1"}, customers[0])
	})

	t.Run("valid customers keep input order", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{
			rawCustomer(s("102"), s("Customer 2")),
			rawCustomer(s("-7"), s("Customer 1")),
		})
		assert.Empty(t, errs)
		assert.Equal(t, []model.Customer{
			{ID: 102, Name: "Customer 2"},
			{ID: -7, Name: "Customer 1"},
		}, customers)
	})

	t.Run("ids outside 32-bit range", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{
			rawCustomer(s("2147483647"), s("Max")),
			rawCustomer(s("2147483648"), s("Overflow")),
		})
		assert.Empty(t, customers)
		assert.Equal(t, []string{"Invalid customer id for customer name: Overflow"}, errs)
	})

	t.Run("one invalid customer", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{rawCustomer(s("badId"), s("Customer 1"))})
		assert.Empty(t, customers)
		assert.Equal(t, []string{"Invalid customer id for customer name: Customer 1"}, errs)
	})

	t.Run("mix of valid and invalid rejects all", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{
			rawCustomer(s("101"), s("Customer 1")),
			rawCustomer(s("badId"), s("Customer 2")),
			rawCustomer(s("102"), s("Customer 3")),
			rawCustomer(nil, s("Customer 4")),
		})
		assert.Empty(t, customers)
		assert.Equal(t, []string{
			"Invalid customer id for customer name: Customer 2",
			"Invalid customer id for customer name: Customer 4",
		}, errs)
	})

	t.Run("all kinds of invalid ids", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{
			rawCustomer(s("101"), s("Customer 1")),
			rawCustomer(s("badId"), s("Customer 2")),
			rawCustomer(nil, s("Customer 4")),
			rawCustomer(nil, nil),
			rawCustomer(s(""), s("Customer 5")),
			rawCustomer(s("1.5"), s("Customer 6")),
		})
		assert.Empty(t, customers)
		assert.Equal(t, []string{
			"Invalid customer id for customer name: Customer 2",
			"Invalid customer id for customer name: Customer 4",
			"Invalid customer id for customer name: null",
			"Invalid customer id for customer name: Customer 5",
			"Invalid customer id for customer name: Customer 6",
		}, errs)
	})

	t.Run("absent name on valid id becomes empty", func(t *testing.T) {
		customers, errs := p.Parse([]model.RawCustomer{rawCustomer(s("5"), nil)})
		assert.Empty(t, errs)
		assert.Equal(t, []model.Customer{{ID: 5, Name: ""}}, customers)
	})
}

func TestCustomerParser_UsesCatalog(t *testing.T) {
	p := NewCustomerParser(messages.FromMap(map[string]string{
		messages.InvalidCustomerID: "bad id: ",
	}))

	_, errs := p.Parse([]model.RawCustomer{rawCustomer(s("x"), s("Ann"))})
	assert.Equal(t, []string{"bad id: Ann"}, errs)
}
