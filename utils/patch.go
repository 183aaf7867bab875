package utils

import (
	"reflect"
	"strconv"
	"strings"
)

// UpdatesFromPtrDTO builds a map[string]any containing only non-nil *fields from a pointer DTO.
// Keys are the Go field names; GORM resolves them to columns. Optionally provide a renames
// map to translate a field to another key, or to "-" to leave it out (e.g. fields that need
// conversion before they reach the model).
func UpdatesFromPtrDTO(dto any, renames map[string]string) map[string]any {
	res := make(map[string]any)
	v := reflect.ValueOf(dto)
	if v.Kind() != reflect.Ptr {
		return res
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return res
	}
	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		fv := s.Field(i)
		if !sf.IsExported() || fv.Kind() != reflect.Ptr || fv.IsNil() {
			continue
		}
		name := sf.Name
		if alt, ok := renames[name]; ok && alt != "" {
			if alt == "-" {
				continue
			}
			name = alt
		}
		res[name] = fv.Elem().Interface()
	}
	return res
}

// ParseID parses a positive numeric id. Zero and garbage are rejected.
func ParseID(s string) (uint, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
