package validators

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/JGuylherme/Service-POS/internal/timezone"
)

var once sync.Once

// Register installs the custom rules on gin's validator engine.
//
//	notblank       string with at least one non-space character
//	email_address  local@domain.tld
//	decimal_places=N  a decimal with no more than N fractional digits
//
// decimal.Decimal is validated as a float64 and timezone.DateTime as a
// time.Time, so numeric and required rules work on them.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		Configure(v)
	})
}

// Configure applies the custom rules to v.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return IsEmailFormatValid(fl.Field().String())
	})
	_ = v.RegisterValidation("decimal_places", hasDecimalPlaces)

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(timezone.DateTime); ok {
			return d.Time
		}
		return nil
	}, timezone.DateTime{})
}

func hasDecimalPlaces(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil || places < 0 {
		return false
	}

	d, ok := sourceDecimal(fl)
	if !ok {
		if fl.Field().Kind() != reflect.Float64 {
			return false
		}
		d = decimal.NewFromFloat(fl.Field().Float())
	}
	return d.Equal(d.Round(int32(places)))
}

// sourceDecimal reads the field before the float64 type func applied, so
// digits beyond float precision are still seen.
func sourceDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := fl.Parent()
	for parent.Kind() == reflect.Ptr {
		if parent.IsNil() {
			return decimal.Decimal{}, false
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}

	field := parent.FieldByName(fl.StructFieldName())
	if !field.IsValid() {
		return decimal.Decimal{}, false
	}
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return decimal.Decimal{}, false
		}
		field = field.Elem()
	}
	d, ok := field.Interface().(decimal.Decimal)
	return d, ok
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
