package validators

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JGuylherme/Service-POS/internal/timezone"
)

func TestIsEmailFormatValid(t *testing.T) {
	assert.True(t, IsEmailFormatValid("ana@example.com"))
	assert.True(t, IsEmailFormatValid(" ana@example.com "))
	assert.False(t, IsEmailFormatValid("ana@example"))
	assert.False(t, IsEmailFormatValid("ana example@x.com"))
	assert.False(t, IsEmailFormatValid(""))
}

type sample struct {
	Name  string             `json:"name" validate:"required,notblank"`
	Email *string            `json:"email" validate:"omitempty,email_address"`
	Price *decimal.Decimal   `json:"price" validate:"required,gte=0"`
	Start *timezone.DateTime `json:"start_time" validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

func TestConfigure_Rules(t *testing.T) {
	v := newValidator()
	zero := decimal.Zero
	start := &timezone.DateTime{Time: time.Now()}

	require.NoError(t, v.Struct(sample{Name: "Ana", Price: &zero, Start: start}))

	bad := "nope"
	neg := decimal.NewFromInt(-1)
	err := v.Struct(sample{Name: "   ", Email: &bad, Price: &neg})
	require.Error(t, err)

	fields := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	assert.Equal(t, map[string]string{
		"name":       "notblank",
		"email":      "email_address",
		"price":      "gte",
		"start_time": "required",
	}, fields)
}

type Priced struct {
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,decimal_places=2"`
}

type pricedLine struct {
	Priced
	Qty int `json:"qty"`
}

func TestConfigure_DecimalPlaces(t *testing.T) {
	v := newValidator()

	for _, ok := range []string{"0", "19.9", "19.90", "20.000", "99999999.99"} {
		d := decimal.RequireFromString(ok)
		assert.NoError(t, v.Struct(Priced{Price: &d}), ok)
	}

	for _, bad := range []string{"19.999", "0.001", "12345678.9999999999999999"} {
		d := decimal.RequireFromString(bad)
		err := v.Struct(Priced{Price: &d})
		require.Error(t, err, bad)
		assert.Equal(t, "decimal_places", err.(validator.ValidationErrors)[0].Tag())
	}

	d := decimal.RequireFromString("5.125")
	err := v.Struct(pricedLine{Priced: Priced{Price: &d}})
	require.Error(t, err)
	assert.Equal(t, "decimal_places", err.(validator.ValidationErrors)[0].Tag())
}
