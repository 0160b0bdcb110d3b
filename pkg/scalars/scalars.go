/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

// Package scalars converts attribute and text content between the textual
// document form and typed Go values. The supported target kinds are fixed;
// everything else must implement encoding.TextMarshaler / TextUnmarshaler.
package scalars

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedKind is returned (wrapped) when a value can not be
// converted because its Go type is not a supported scalar kind.
var ErrUnsupportedKind = errors.New("unsupported scalar kind")

// Parse assigns textual value to the typed target.
//
// Target must be a pointer to a supported kind (string, bool, signed and
// unsigned integers, floats), a pointer to pointer for nullable fields, or
// an encoding.TextUnmarshaler. For nullable targets blank text assigns nil.
//
// Malformed text returns the underlying syntax error; an unsupported target
// type returns ErrUnsupportedKind.
func Parse(text string, into any) (err error) {
	switch p := into.(type) {
	case *string:
		*p = text
	case **string:
		if isBlank(text) {
			*p = nil
		} else {
			v := text
			*p = &v
		}
	case *bool:
		*p, err = strconv.ParseBool(strings.TrimSpace(text))
	case **bool:
		return parseOpt(text, p, Parse)
	case *int:
		var v int64
		if v, err = parseInt(text, strconv.IntSize); err == nil {
			*p = int(v)
		}
	case **int:
		return parseOpt(text, p, Parse)
	case *int8:
		var v int64
		if v, err = parseInt(text, 8); err == nil {
			*p = int8(v)
		}
	case **int8:
		return parseOpt(text, p, Parse)
	case *int16:
		var v int64
		if v, err = parseInt(text, 16); err == nil {
			*p = int16(v)
		}
	case **int16:
		return parseOpt(text, p, Parse)
	case *int32:
		var v int64
		if v, err = parseInt(text, 32); err == nil {
			*p = int32(v)
		}
	case **int32:
		return parseOpt(text, p, Parse)
	case *int64:
		*p, err = parseInt(text, 64)
	case **int64:
		return parseOpt(text, p, Parse)
	case *uint:
		var v uint64
		if v, err = parseUint(text, strconv.IntSize); err == nil {
			*p = uint(v)
		}
	case **uint:
		return parseOpt(text, p, Parse)
	case *uint8:
		var v uint64
		if v, err = parseUint(text, 8); err == nil {
			*p = uint8(v)
		}
	case **uint8:
		return parseOpt(text, p, Parse)
	case *uint16:
		var v uint64
		if v, err = parseUint(text, 16); err == nil {
			*p = uint16(v)
		}
	case **uint16:
		return parseOpt(text, p, Parse)
	case *uint32:
		var v uint64
		if v, err = parseUint(text, 32); err == nil {
			*p = uint32(v)
		}
	case **uint32:
		return parseOpt(text, p, Parse)
	case *uint64:
		*p, err = parseUint(text, 64)
	case **uint64:
		return parseOpt(text, p, Parse)
	case *float32:
		var v float64
		if v, err = strconv.ParseFloat(strings.TrimSpace(text), 32); err == nil {
			*p = float32(v)
		}
	case **float32:
		return parseOpt(text, p, Parse)
	case *float64:
		*p, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
	case **float64:
		return parseOpt(text, p, Parse)
	case encoding.TextUnmarshaler:
		err = p.UnmarshalText([]byte(text))
	default:
		err = fmt.Errorf("scalar target type %T is not supported: %w", into, ErrUnsupportedKind)
	}
	return err
}

// Format renders the typed value back to its textual document form.
//
// Value must be a supported kind, a pointer to one for nullable fields, or
// an encoding.TextMarshaler. Nil pointers render as the empty string.
func Format(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case *string:
		return formatOpt(v)
	case bool:
		return strconv.FormatBool(v), nil
	case *bool:
		return formatOpt(v)
	case int:
		return strconv.Itoa(v), nil
	case *int:
		return formatOpt(v)
	case int8:
		return strconv.FormatInt(int64(v), 10), nil
	case *int8:
		return formatOpt(v)
	case int16:
		return strconv.FormatInt(int64(v), 10), nil
	case *int16:
		return formatOpt(v)
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case *int32:
		return formatOpt(v)
	case int64:
		return strconv.FormatInt(v, 10), nil
	case *int64:
		return formatOpt(v)
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case *uint:
		return formatOpt(v)
	case uint8:
		return strconv.FormatUint(uint64(v), 10), nil
	case *uint8:
		return formatOpt(v)
	case uint16:
		return strconv.FormatUint(uint64(v), 10), nil
	case *uint16:
		return formatOpt(v)
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case *uint32:
		return formatOpt(v)
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case *uint64:
		return formatOpt(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case *float32:
		return formatOpt(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case *float64:
		return formatOpt(v)
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		return string(b), err
	}
	return "", fmt.Errorf("scalar value type %T is not supported: %w", value, ErrUnsupportedKind)
}

// IsZero reports whether the value equals its type zero value. Nullable
// (pointer) values are zero when nil only. Self-describing scalars are zero
// when they implement `IsZero() bool` and it returns true, else never.
func IsZero(value any) bool {
	switch v := value.(type) {
	case string:
		return v == ""
	case bool:
		return !v
	case int:
		return v == 0
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint:
		return v == 0
	case uint8:
		return v == 0
	case uint16:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	case *string:
		return v == nil
	case *bool:
		return v == nil
	case *int:
		return v == nil
	case *int8:
		return v == nil
	case *int16:
		return v == nil
	case *int32:
		return v == nil
	case *int64:
		return v == nil
	case *uint:
		return v == nil
	case *uint8:
		return v == nil
	case *uint16:
		return v == nil
	case *uint32:
		return v == nil
	case *uint64:
		return v == nil
	case *float32:
		return v == nil
	case *float64:
		return v == nil
	case interface{ IsZero() bool }:
		return v.IsZero()
	}
	return false
}

// parseOpt assigns nullable target: blank text assigns nil, other text
// parses into a freshly allocated value.
func parseOpt[T any](text string, p **T, parse func(string, any) error) error {
	if isBlank(text) {
		*p = nil
		return nil
	}
	v := new(T)
	if err := parse(text, v); err != nil {
		return err
	}
	*p = v
	return nil
}

func formatOpt[T any](v *T) (string, error) {
	if v == nil {
		return "", nil
	}
	return Format(*v)
}

func parseInt(text string, bitSize int) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, bitSize)
}

func parseUint(text string, bitSize int) (uint64, error) {
	return strconv.ParseUint(strings.TrimSpace(text), 10, bitSize)
}

func isBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
