package parser

import (
	"strconv"

	"github.com/Rory34/retail-rewards/internal/messages"
	"github.com/Rory34/retail-rewards/internal/model"
)

type CustomerParser struct {
	msgs *messages.Catalog
}

func NewCustomerParser(msgs *messages.Catalog) *CustomerParser {
	return &CustomerParser{msgs: msgs}
}

// Parse converts all records or none: a single bad id rejects the batch.
func (p *CustomerParser) Parse(raw []model.RawCustomer) ([]model.Customer, []string) {
	if len(raw) == 0 {
		return []model.Customer{}, []string{}
	}

	errs := []string{}
	customers := make([]model.Customer, 0, len(raw))
	for _, rc := range raw {
		id, ok := parseInt(rc.ID)
		if !ok {
			errs = append(errs, p.msgs.Get(messages.InvalidCustomerID)+nameOf(rc))
			continue
		}
		customers = append(customers, model.Customer{ID: id, Name: deref(rc.Name)})
	}

	if len(errs) > 0 {
		return []model.Customer{}, errs
	}
	return customers, []string{}
}

func nameOf(rc model.RawCustomer) string {
	if rc.Name == nil {
		return "null"
	}
	return *rc.Name
}

// parseInt accepts signed decimal ids within 32-bit range.
func parseInt(s *string) (int, bool) {
	if s == nil {
		return 0, false
	}
	v, err := strconv.ParseInt(*s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
