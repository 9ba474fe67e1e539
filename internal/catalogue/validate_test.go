package catalogue

import (
	"testing"

	"github.com/fieldstock/inventory-backend/generated/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateValue_Number(t *testing.T) {
	assert.NoError(t, ValidateValue("capacity", db.AttributeDatatypeNumber, "12.5"))
	assert.NoError(t, ValidateValue("capacity", db.AttributeDatatypeNumber, "-3"))
	assert.NoError(t, ValidateValue("capacity", db.AttributeDatatypeNumber, "0"))

	err := ValidateValue("capacity", db.AttributeDatatypeNumber, "abc")
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "capacity", ve.Key)
	assert.Equal(t, "abc", ve.Value)
}

func TestValidateValue_Boolean(t *testing.T) {
	for _, v := range []string{"true", "false", "TRUE", "False", "1", "0"} {
		assert.NoError(t, ValidateValue("solar", db.AttributeDatatypeBoolean, v), "value %q", v)
	}

	for _, v := range []string{"t", "F", "maybe", "yes", "no", "2", ""} {
		assert.Error(t, ValidateValue("solar", db.AttributeDatatypeBoolean, v), "value %q", v)
	}
}

func TestValidateValue_DateIsOpaqueText(t *testing.T) {
	assert.NoError(t, ValidateValue("installed_on", db.AttributeDatatypeDate, "2025-06-01"))
	assert.NoError(t, ValidateValue("installed_on", db.AttributeDatatypeDate, "01-06-2025"))
	assert.NoError(t, ValidateValue("installed_on", db.AttributeDatatypeDate, "not a date"))
}

func TestValidateValue_JSONIsOpaqueText(t *testing.T) {
	assert.NoError(t, ValidateValue("specs", db.AttributeDatatypeJson, `{"rpm": 1450}`))
	assert.NoError(t, ValidateValue("specs", db.AttributeDatatypeJson, `{"rpm": }`))
	assert.NoError(t, ValidateValue("specs", db.AttributeDatatypeJson, `not json`))
}

func TestValidateValue_StringAcceptsAnything(t *testing.T) {
	assert.NoError(t, ValidateValue("serial", db.AttributeDatatypeString, ""))
	assert.NoError(t, ValidateValue("serial", db.AttributeDatatypeString, "SN-2024-00017"))
}

func TestValidateValue_UnknownDatatype(t *testing.T) {
	err := ValidateValue("serial", db.AttributeDatatype("blob"), "x")
	assert.Error(t, err)
}
