package sanitizer

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       strings.ToLower,
		"trim_lower":  TrimToLower,
		"single_line": SingleLine,
		"whitespace":  RemoveExtraWhitespace,
		"strip_html":  StripHTML,
		"no_control":  RemoveControlChars,
		"normalize":   Normalize,

		"email":     Email,
		"nickname":  Nickname,
		"plan_name": PlanName,
		"message":   Message,
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies sanitization to struct fields based on their tags
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}
	sanitizeStruct(rv.Elem())
	return nil
}

func sanitizeStruct(rv reflect.Value) {
	rt := rv.Type()

	for i := 0; i < rv.NumField(); i++ {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if tag != "" {
				field.SetString(apply(field.String(), tag))
			}
		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				if tag != "" {
					elem.SetString(apply(elem.String(), tag))
				}
			case reflect.Struct:
				sanitizeStruct(elem)
			}
		case reflect.Struct:
			sanitizeStruct(field)
		case reflect.Slice:
			if tag == "" || field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < field.Len(); j++ {
				elem := field.Index(j)
				elem.SetString(apply(elem.String(), tag))
			}
		}
	}
}

func apply(value, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			if n, err := strconv.Atoi(limit); err == nil && n > 0 {
				value = MaxLength(value, n)
			}
			continue
		}

		if fn, ok := registry[name]; ok {
			value = fn(value)
		}
	}
	return value
}
