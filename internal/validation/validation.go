// Package validation проверяет входящие запросы restock.v1.
// Сгенерированные структуры не несут тегов validate, поэтому правила
// регистрируются картой по имени поля.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	restockv1 "github.com/vladislavdragonenkov/restock/proto/restock/v1"
)

// ErrInvalidRequest оборачивает все ошибки валидации.
var ErrInvalidRequest = errors.New("invalid request")

// Validator: потокобезопасная обёртка над validator.Validate с кешем структур.
type Validator struct {
	v *validator.Validate
}

var orderLineRules = map[string]string{
	"Products":  "dive,required",
	"UserId":    "gt=0",
	"NameTable": "required",
	"Email":     "required,email",
}

type structRules struct {
	rules map[string]string
	msg   any
}

func requestRules() []structRules {
	updateOrder := map[string]string{"OrderId": "gt=0"}
	for field, rule := range orderLineRules {
		updateOrder[field] = rule
	}

	return []structRules{
		{msg: &restockv1.CreateTableRequest{}, rules: map[string]string{
			"Name":     "required,max=255",
			"Quantity": "gte=0",
			"State":    "required,max=64",
		}},
		{msg: &restockv1.GetTablesByNameRequest{}, rules: map[string]string{"Name": "required"}},
		{msg: &restockv1.UpdateTableStateRequest{}, rules: map[string]string{
			"Id":            "gt=0",
			"Quantity":      "gte=0",
			"State":         "required,max=64",
			"ActiveOrderId": "gte=0",
		}},
		{msg: &restockv1.OrderItem{}, rules: map[string]string{
			"ProductId":     "gt=0",
			"Quantity":      "gt=0",
			"Modifications": "max=512",
			"PricePerUnit":  "gte=0",
			"TotalPrice":    "gte=0",
		}},
		{msg: &restockv1.CreateOrderRequest{}, rules: orderLineRules},
		{msg: &restockv1.UpdateOrderRequest{}, rules: updateOrder},
		{msg: &restockv1.GetOrderRequest{}, rules: map[string]string{"OrderId": "gt=0"}},
		{msg: &restockv1.DeleteOrderItemRequest{}, rules: map[string]string{"OrderId": "gt=0", "ProductId": "gt=0"}},
		{msg: &restockv1.GetUserRequest{}, rules: map[string]string{"UserId": "gt=0"}},
		{msg: &restockv1.CreateSaleRequest{}, rules: map[string]string{
			"UserName":   "required",
			"TableName":  "required",
			"Date":       "required",
			"Tip":        "gte=0",
			"TotalPrice": "gte=0",
			"Products":   "dive,required",
			"Email":      "required,email",
		}},
	}
}

// New создаёт Validator с правилами для запросов restock.v1.
// Поля в сообщениях об ошибках называются по json-тегам.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	for _, r := range requestRules() {
		v.RegisterStructValidationMapRules(r.rules, r.msg)
	}
	return &Validator{v: v}
}

// Struct валидирует запрос и возвращает ошибку с перечнем нарушенных полей.
func (v *Validator) Struct(req any) error {
	err := v.v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidRequest, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
