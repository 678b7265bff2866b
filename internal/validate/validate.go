package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"demo/catalog/internal/model"
)

// ErrInvalid matches every error returned by the payload validators.
var ErrInvalid = errors.New("invalid payload")

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

func (m multiErr) Is(target error) bool { return target == ErrInvalid }

func (m multiErr) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

// Messages lists the individual field errors carried by err.
func Messages(err error) []string {
	var m multiErr
	if !errors.As(err, &m) {
		return nil
	}
	out := make([]string, 0, len(m))
	for _, e := range m {
		out = append(out, e.Error())
	}
	return out
}

// Text coerces a decoded JSON value to its text form. Strings pass through,
// numbers keep their literal digits, anything else is rendered as JSON.
func Text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, strings.TrimSpace(t) != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

func requireText(p map[string]any, key string, errs *multiErr) string {
	v, ok := p[key]
	if !ok || v == nil {
		*errs = append(*errs, fmt.Errorf("%s: required", key))
		return ""
	}
	s, ok := Text(v)
	if !ok {
		*errs = append(*errs, fmt.Errorf("%s: must not be empty", key))
	}
	return s
}

// ProductPayload checks a product body and returns the product to insert.
// The returned product has no ID; any "id" in the payload is ignored.
func ProductPayload(p map[string]any) (model.Product, error) {
	var errs multiErr
	out := model.Product{
		Name:        requireText(p, "name", &errs),
		Description: requireText(p, "description", &errs),
		Price:       requireText(p, "price", &errs),
	}
	if err := errs.OrNil(); err != nil {
		return model.Product{}, err
	}
	return out, nil
}

// OrderPayload checks an order body and returns the order to insert.
func OrderPayload(p map[string]any) (model.Order, error) {
	var errs multiErr
	out := model.Order{
		DateOrdered:     requireText(p, "dateOrdered", &errs),
		Total:           requireText(p, "total", &errs),
		DeliveryAddress: requireText(p, "deliveryAddress", &errs),
		OrderReference:  requireText(p, "orderReference", &errs),
		Products:        products(p, &errs),
	}
	if err := errs.OrNil(); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func products(p map[string]any, errs *multiErr) []model.ProductRef {
	v, ok := p["products"]
	if !ok || v == nil {
		*errs = append(*errs, errors.New("products: required"))
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		*errs = append(*errs, errors.New("products: must be a list"))
		return nil
	}
	if len(list) == 0 {
		*errs = append(*errs, errors.New("products: must contain at least 1 product"))
		return nil
	}
	refs := make([]model.ProductRef, 0, len(list))
	for i, e := range list {
		obj, ok := e.(map[string]any)
		if !ok {
			*errs = append(*errs, fmt.Errorf("products[%d]: must be an object", i))
			continue
		}
		ref := model.ProductRef(obj)
		if strings.TrimSpace(ref.ProductID()) == "" {
			*errs = append(*errs, fmt.Errorf("products[%d].%s: required", i, model.ProductIDKey))
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
