// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for settings structs.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"cogentcore.org/eve/base/errors"
)

// SetFromDefaultTags sets the fields of the given struct pointer from
// their `default:` tags, recursing into struct fields without a tag.
// Fields without a tag are left as they are.
func SetFromDefaultTags(obj any) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a pointer to a struct, got %T", obj)
	}
	return setDefaults(v.Elem())
}

func setDefaults(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setDefaults(fv))
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s.%s: %w", typ.Name(), f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value by parsing the string
// according to its kind. Strings, bools, integers, floats and
// [time.Duration] are supported.
func SetFromString(v reflect.Value, s string) error {
	if v.Type() == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(n)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
