package utils

import (
	"reflect"
	"strings"
)

// Normalize cleans a bound request DTO in place: strings are trimmed and
// float64 amounts are rounded to cents. Both value and pointer fields are
// handled, nil pointers stay nil, and embedded structs are walked.
// Fields tagged `normalize:"-"` (passwords) are left untouched.
func Normalize(dto any) {
	v := reflect.ValueOf(dto)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	normalizeStruct(v.Elem())
}

func normalizeStruct(s reflect.Value) {
	if s.Kind() != reflect.Struct {
		return
	}
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get("normalize") == "-" {
			continue
		}
		f := s.Field(i)
		if sf.Anonymous {
			normalizeStruct(f)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Float64:
			f.SetFloat(Round2(f.Float()))
		}
	}
}
