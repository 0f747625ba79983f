package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caoguofeng92/drools/procedure"
)

// Cast converts v to the declared type t. A nil value stays nil for every
// type. Numbers widen to float64 or narrow to int64 when whole; text is parsed
// for numeric and boolean targets. Anything else fails with ErrInvalidCast.
func Cast(t procedure.Type, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t {
	case procedure.TypeObject, procedure.TypeContext, "":
		return v, nil
	case procedure.TypeDouble, procedure.TypeFloat:
		return ToFloat(v)
	case procedure.TypeInteger:
		return ToInt(v)
	case procedure.TypeBoolean:
		return toBool(v)
	case procedure.TypeString:
		return toString(v)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidCast, t)
	}
}

// ToFloat converts numbers and numeric text to float64.
func ToFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q to double: %w", ErrInvalidCast, n, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %T to double", ErrInvalidCast, v)
	}
}

// ToInt converts integers, whole floats and integer text to int64.
func ToInt(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float64, float32, uint, uint64:
		f, err := ToFloat(n)
		if err != nil {
			return 0, err
		}
		// float64(math.MaxInt64) is 2^63, one past the largest int64.
		if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, fmt.Errorf("%w: %v to int", ErrInvalidCast, v)
		}
		return int64(f), nil
	case string:
		s := strings.TrimSpace(n)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q to int", ErrInvalidCast, n)
		}
		return ToInt(f)
	default:
		return 0, fmt.Errorf("%w: %T to int", ErrInvalidCast, v)
	}
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, fmt.Errorf("%w: %q to boolean", ErrInvalidCast, b)
		}
		return parsed, nil
	default:
		return false, fmt.Errorf("%w: %T to boolean", ErrInvalidCast, v)
	}
}

func toString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case bool:
		return strconv.FormatBool(s), nil
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(s), nil
	default:
		return "", fmt.Errorf("%w: %T to string", ErrInvalidCast, v)
	}
}
