package registry

import (
	"fmt"
	"math"

	"github.com/goliatone/go-formkit/pkg/errs"
)

// Arg returns args[i], or nil when it was not supplied.
func Arg(args []any, i int) any {
	if i < 0 || i >= len(args) {
		return nil
	}
	return args[i]
}

// String requires args[i] to be a string.
func String(op, param string, args []any, i int) (string, error) {
	value, ok := Arg(args, i).(string)
	if !ok {
		return "", errs.Invalid(op, param, fmt.Sprintf("%s must be a string, got %s", param, typeName(Arg(args, i))))
	}
	return value, nil
}

// Bool requires args[i] to be a bool.
func Bool(op, param string, args []any, i int) (bool, error) {
	value, ok := Arg(args, i).(bool)
	if !ok {
		return false, errs.Invalid(op, param, fmt.Sprintf("%s must be a boolean, got %s", param, typeName(Arg(args, i))))
	}
	return value, nil
}

// Int requires args[i] to be an integral number of any numeric kind.
func Int(op, param string, args []any, i int) (int, error) {
	value, ok := toInt(Arg(args, i))
	if !ok {
		return 0, errs.Invalid(op, param, fmt.Sprintf("%s must be an integer, got %s", param, describe(Arg(args, i))))
	}
	return value, nil
}

// OptionalInt is Int with def used when args[i] is missing or nil.
func OptionalInt(op, param string, args []any, i int, def int) (int, error) {
	if Arg(args, i) == nil {
		return def, nil
	}
	return Int(op, param, args, i)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	default:
		return 0, false
	}
}

// maxSafeInteger bounds floats that convert to int without precision loss.
const maxSafeInteger = 1<<53 - 1

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if math.Abs(f) > maxSafeInteger {
		return 0, false
	}
	return int(f), true
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func describe(v any) string {
	switch v.(type) {
	case float32, float64:
		return fmt.Sprintf("%v", v)
	default:
		return typeName(v)
	}
}
