// Package validator checks raw request input against an ordered list of
// field declarations and returns normalized values. It has no side effects
// and no knowledge of HTTP or storage.
package validator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	"github.com/spf13/cast"
)

// Kind selects how a raw value is normalized.
type Kind int

const (
	// Text values are stringified and trimmed.
	Text Kind = iota
	// Integer values accept JSON numbers and numeric strings.
	Integer
)

// Field declares one input field. Rules uses go-playground/validator tag
// syntax and is checked against the normalized value.
type Field struct {
	Name  string
	Kind  Kind
	Rules string
}

func TextField(name, rules string) Field { return Field{Name: name, Kind: Text, Rules: rules} }

func IntegerField(name string) Field { return Field{Name: name, Kind: Integer} }

// FieldError names the first field that failed and why.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// Values holds normalized input keyed by field name.
type Values map[string]any

// String returns a Text value.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns an Integer value.
func (v Values) Int(name string) int {
	n, _ := v[name].(int)
	return n
}

var (
	once     sync.Once
	validate *govalidator.Validate
	trans    ut.Translator
)

// Setup builds the rule engine with Spanish translations. Calling it at
// startup is optional; Validate initializes lazily.
func Setup() {
	once.Do(func() {
		validate = govalidator.New(govalidator.WithRequiredStructEnabled())

		esLocale := es.New()
		uni := ut.New(esLocale, esLocale)
		trans, _ = uni.GetTranslator("es")
		_ = es_translations.RegisterDefaultTranslations(validate, trans)
	})
}

// Validate walks fields in order and stops at the first missing or invalid
// one. On success every declared field is present in the result.
func Validate(input map[string]any, fields []Field) (Values, error) {
	Setup()

	out := make(Values, len(fields))
	for _, f := range fields {
		raw, present := input[f.Name]
		if !present || raw == nil {
			return nil, missing(f)
		}

		var (
			value any
			err   error
		)
		switch f.Kind {
		case Integer:
			value, err = normalizeInteger(f, raw)
		default:
			value, err = normalizeText(f, raw)
		}
		if err != nil {
			return nil, err
		}

		if f.Rules != "" {
			if err := checkRules(f, value); err != nil {
				return nil, err
			}
		}
		out[f.Name] = value
	}
	return out, nil
}

func normalizeText(f Field, raw any) (string, error) {
	s, err := cast.ToStringE(raw)
	if err != nil {
		return "", &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s debe ser un texto", f.Name)}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", missing(f)
	}
	return s, nil
}

func normalizeInteger(f Field, raw any) (int, error) {
	if _, isBool := raw.(bool); isBool {
		return 0, missing(f)
	}
	if s, isString := raw.(string); isString {
		raw = strings.TrimSpace(s)
		if raw == "" {
			return 0, missing(f)
		}
	}

	n, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, missing(f)
	}
	if n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s debe ser un número entero", f.Name)}
	}
	return int(n), nil
}

func checkRules(f Field, value any) error {
	err := validate.Var(value, f.Rules)
	if err == nil {
		return nil
	}

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		// Var has no field name, so the translation starts with the verb.
		detail := strings.TrimSpace(ve[0].Translate(trans))
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s %s", f.Name, detail)}
	}
	return &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s no es válido", f.Name)}
}

func missing(f Field) *FieldError {
	if f.Kind == Integer {
		return &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s es obligatorio y debe ser numérico", f.Name)}
	}
	return &FieldError{Field: f.Name, Message: fmt.Sprintf("El campo %s es obligatorio", f.Name)}
}
