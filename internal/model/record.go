package model

import "fmt"

// Canonical field names, as they appear in input headers, missing-value
// summaries, and error messages.
const (
	FieldCustomerID     = "customer_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPurchaseAmount = "purchase_amount"
)

// Fields lists the schema in column order.
var Fields = []string{FieldCustomerID, FieldName, FieldEmail, FieldPurchaseAmount}

// Customer is one customer record. ID is not guaranteed unique in raw
// input; Email and Amount may be missing.
type Customer struct {
	ID     int         `json:"customer_id"`
	Name   string      `json:"name"`
	Email  NullString  `json:"email"`
	Amount NullFloat64 `json:"purchase_amount"`
}

// SchemaError reports input that does not conform to the customer
// record schema, such as a missing required column.
type SchemaError struct {
	Field  string
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("schema: field %q: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("schema: missing required field %q", e.Field)
}
