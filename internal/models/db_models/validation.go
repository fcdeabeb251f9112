package db_models

import "fmt"

// FieldError is a single validation failure. Title follows the admin
// console contract ("Invalid <field>") and is what clients match on.
type FieldError struct {
	Field  string
	Title  string
	Detail string
}

func InvalidField(field, detail string) FieldError {
	return FieldError{
		Field:  field,
		Title:  fmt.Sprintf("Invalid %s", field),
		Detail: detail,
	}
}
