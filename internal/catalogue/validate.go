package catalogue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fieldstock/inventory-backend/generated/db"
)

// ValidationError reports a single attribute value that failed its declared
// datatype. The Key identifies the attribute so callers can surface it.
type ValidationError struct {
	Key      string
	Datatype db.AttributeDatatype
	Value    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("attribute %q: %q is not a valid %s", e.Key, e.Value, e.Datatype)
}

type validatorFunc func(value string) bool

// Date and json values are stored as opaque text, so only number and
// boolean carry real checks.
var validators = map[db.AttributeDatatype]validatorFunc{
	db.AttributeDatatypeString:  validateOpaque,
	db.AttributeDatatypeNumber:  validateNumber,
	db.AttributeDatatypeBoolean: validateBoolean,
	db.AttributeDatatypeDate:    validateOpaque,
	db.AttributeDatatypeJson:    validateOpaque,
}

// ValidateValue checks a raw attribute value against its declared datatype.
func ValidateValue(key string, datatype db.AttributeDatatype, value string) error {
	validate, ok := validators[datatype]
	if !ok {
		return &ValidationError{Key: key, Datatype: datatype, Value: value}
	}
	if !validate(value) {
		return &ValidationError{Key: key, Datatype: datatype, Value: value}
	}
	return nil
}

func validateOpaque(string) bool {
	return true
}

func validateNumber(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// Booleans are a closed set: true, false, 1 and 0, case-insensitive.
// Abbreviations like "t" or "f" are not accepted.
func validateBoolean(value string) bool {
	switch strings.ToLower(value) {
	case "true", "false", "1", "0":
		return true
	}
	return false
}
