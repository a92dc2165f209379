package api

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/storeledger/internal/domain"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalValue отдает валидатору денежное значение строкой, см. validateMoney.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func parseMoney(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// validateMoney сумма больше нуля и не более двух знаков после запятой.
func validateMoney(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl)
	return ok && domain.ValidateAmount(fl.FieldName(), d) == nil
}

// validateNonNegativeMoney как validateMoney, но допускает ноль.
func validateNonNegativeMoney(fl validator.FieldLevel) bool {
	d, ok := parseMoney(fl)
	return ok && domain.ValidateNonNegativeAmount(fl.FieldName(), d) == nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	validations := map[string]validator.Func{
		"max_bytes":    validateMaxBytes,
		"money":        validateMoney,
		"money_nonneg": validateNonNegativeMoney,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
