package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// ValidatorFunc builds a Rule for a string field from the tag parameters.
type ValidatorFunc func(field, value string, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": func(field, value string, _ []string) Rule { return Required(field, value) },
		"email":    func(field, value string, _ []string) Rule { return ValidEmail(field, value) },
		"password": func(field, value string, _ []string) Rule { return StrongPassword(field, value) },
		"uuid":     func(field, value string, _ []string) Rule { return ValidUUID(field, value) },
		"in":       func(field, value string, params []string) Rule { return OneOf(field, value, params...) },
		"min": func(field, value string, params []string) Rule {
			return MinLen(field, value, intParam(params))
		},
		"max": func(field, value string, params []string) Rule {
			return MaxLen(field, value, intParam(params))
		},
	}
)

// RegisterValidator adds a custom validator function to the registry
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates the string fields of a struct based on their
// `validate` tags. Field names in errors come from the `json` tag when present.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errors.New("validator: must pass a pointer to struct")
	}

	var errs ValidationErrors
	validateStruct(rv.Elem(), "", &errs)
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *ValidationErrors) {
	rt := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		name := prefix + fieldName(sf)
		field := rv.Field(i)
		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				field = reflect.ValueOf("")
			} else {
				field = field.Elem()
			}
		}

		switch field.Kind() {
		case reflect.Struct:
			validateStruct(field, name+".", errs)
		case reflect.String:
			if tag != "" {
				validateField(name, field.String(), tag, errs)
			}
		}
	}
}

func validateField(name, value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range strings.Split(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		ruleName, paramStr, _ := strings.Cut(ruleStr, ":")
		var params []string
		if paramStr = strings.TrimSpace(paramStr); paramStr != "" {
			for _, p := range strings.Split(paramStr, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		if fn, ok := registry[strings.TrimSpace(ruleName)]; ok {
			if rule := fn(name, value, params); !rule.Check() {
				errs.Add(rule.Error)
			}
		}
	}
}

func fieldName(sf reflect.StructField) string {
	if name, _, _ := strings.Cut(sf.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return sf.Name
}

func intParam(params []string) int {
	if len(params) == 0 {
		return 0
	}
	n, _ := strconv.Atoi(params[0])
	return n
}
