package util

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// StructAsFields converts a struct to ordered fields, in the same order as they
// are defined in the struct.
// Keys come from the json tag (falling back to the field name with its first
// letter lowercased). Fields tagged "-" are skipped, and so are zero values of
// fields tagged omitempty.
func StructAsFields(s any) (Fields, error) {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, errors.New("nil struct pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, errors.Errorf("expected struct, got %s", v.Kind())
	}
	t := v.Type()

	fields := make(Fields, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name, omitEmpty, skip := parseJSONTag(field)
		if skip {
			continue
		}

		value := v.Field(i)
		if omitEmpty && value.IsZero() {
			continue
		}

		fields = append(fields, Field{Key: name, Value: value.Interface()})
	}

	return fields, nil
}

func parseJSONTag(field reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	if name == "" {
		name = strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name, omitEmpty, false
}
