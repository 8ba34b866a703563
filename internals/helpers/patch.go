package helper

import (
	"fmt"
	"reflect"
)

// MergePatch copies every non-nil pointer field of patch onto the field with
// the same name in dst (or the name given by a `patch:"Name"` tag). Fields
// tagged `patch:"-"` are left to the caller. It returns the names it set.
//
// A *T patch field may target either T or *T, and T may differ from the
// target type as long as both share the same kind (e.g. dbtime.Date onto
// datatypes.Date).
func MergePatch(dst any, patch any) ([]string, error) {
	dv := reflect.ValueOf(dst)
	if dv.Kind() != reflect.Pointer || dv.IsNil() || dv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("merge patch: dst must be a non-nil struct pointer, got %T", dst)
	}
	dv = dv.Elem()

	pv := reflect.Indirect(reflect.ValueOf(patch))
	if pv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("merge patch: patch must be a struct, got %T", patch)
	}
	pt := pv.Type()

	var set []string
	for i := 0; i < pt.NumField(); i++ {
		sf := pt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("patch")
		if tag == "-" {
			continue
		}
		fv := pv.Field(i)
		if fv.Kind() != reflect.Pointer || fv.IsNil() {
			continue
		}

		name := sf.Name
		if tag != "" {
			name = tag
		}
		target := dv.FieldByName(name)
		if !target.IsValid() || !target.CanSet() {
			return set, fmt.Errorf("merge patch: %s has no settable field %q", dv.Type(), name)
		}

		val := fv.Elem()
		targetType := target.Type()
		if target.Kind() == reflect.Pointer {
			targetType = targetType.Elem()
		}
		if val.Kind() != targetType.Kind() || !val.Type().ConvertibleTo(targetType) {
			return set, fmt.Errorf("merge patch: cannot assign %s to %s.%s", val.Type(), dv.Type(), name)
		}

		converted := val.Convert(targetType)
		if target.Kind() == reflect.Pointer {
			ptr := reflect.New(targetType)
			ptr.Elem().Set(converted)
			target.Set(ptr)
		} else {
			target.Set(converted)
		}
		set = append(set, name)
	}
	return set, nil
}

// CountProvided reports how many pointer fields of patch are non-nil,
// including fields tagged `patch:"-"`.
func CountProvided(patch any) int {
	pv := reflect.Indirect(reflect.ValueOf(patch))
	if pv.Kind() != reflect.Struct {
		return 0
	}
	n := 0
	for i := 0; i < pv.NumField(); i++ {
		if !pv.Type().Field(i).IsExported() {
			continue
		}
		fv := pv.Field(i)
		if fv.Kind() == reflect.Pointer && !fv.IsNil() {
			n++
		}
	}
	return n
}
