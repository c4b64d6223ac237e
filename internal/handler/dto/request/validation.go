package request

import (
	"reflect"
	"sync"

	"estate-marketplace/internal/domain/unit"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators installs the decimal and unit_status tags on gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// Struct-typed fields skip tag validation unless mapped to a scalar.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("decimal_min", decimalBound(func(d, bound decimal.Decimal) bool { return d.GreaterThanOrEqual(bound) }))
		_ = v.RegisterValidation("decimal_gt", decimalBound(func(d, bound decimal.Decimal) bool { return d.GreaterThan(bound) }))
		_ = v.RegisterValidation("decimal_max", decimalBound(func(d, bound decimal.Decimal) bool { return d.LessThanOrEqual(bound) }))
		_ = v.RegisterValidation("unit_status", func(fl validator.FieldLevel) bool {
			return unit.Status(fl.Field().String()).IsValid()
		})
	})
}

func decimalBound(cmp func(d, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, bound)
	}
}
