package internal

import (
	"fmt"
	"math"
	"slices"

	"github.com/caoguofeng92/drools/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// ConvertToStarlarkValue converts a Go value to a Starlark value. Slices,
// including name-value contexts, become lists; maps become dicts.
func ConvertToStarlarkValue(v any) (starlarkLib.Value, error) {
	if v == nil {
		return starlarkLib.None, nil
	}

	switch val := v.(type) {
	case starlarkLib.Value:
		return val, nil
	case bool:
		return starlarkLib.Bool(val), nil
	case int:
		return starlarkLib.MakeInt(val), nil
	case int32:
		return starlarkLib.MakeInt64(int64(val)), nil
	case int64:
		return starlarkLib.MakeInt64(val), nil
	case uint64:
		return starlarkLib.MakeUint64(val), nil
	case float32:
		return starlarkLib.Float(val), nil
	case float64:
		return starlarkLib.Float(val), nil
	case string:
		return starlarkLib.String(val), nil
	case data.Context:
		return ConvertToStarlarkValue(val.Pairs())
	case []any:
		elements := make([]starlarkLib.Value, len(val))
		for i, elem := range val {
			var err error
			elements[i], err = ConvertToStarlarkValue(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
		}
		return starlarkLib.NewList(elements), nil
	case map[string]any:
		dict := starlarkLib.NewDict(len(val))
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			elem, err := ConvertToStarlarkValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			if err := dict.SetKey(starlarkLib.String(k), elem); err != nil {
				return nil, fmt.Errorf("failed to set dict key: %w", err)
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// ConvertStarlarkValueToInterface converts a Starlark value to a Go value.
// Integers become int64, or float64 when they do not fit.
func ConvertStarlarkValueToInterface(v starlarkLib.Value) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch val := v.(type) {
	case starlarkLib.NoneType:
		return nil, nil
	case starlarkLib.Bool:
		return bool(val), nil
	case starlarkLib.Int:
		if i, ok := val.Int64(); ok {
			return i, nil
		}
		f := val.Float()
		if math.IsInf(float64(f), 0) {
			return nil, fmt.Errorf("integer %s out of range", val)
		}
		return float64(f), nil
	case starlarkLib.Float:
		return float64(val), nil
	case starlarkLib.String:
		return string(val), nil
	case starlarkLib.Indexable:
		// lists and tuples
		list := make([]any, val.Len())
		for i := range list {
			elem, err := ConvertStarlarkValueToInterface(val.Index(i))
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
			list[i] = elem
		}
		return list, nil
	case *starlarkLib.Dict:
		dict := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlarkLib.String)
			if !ok {
				return nil, fmt.Errorf("unsupported dict key type %s", item[0].Type())
			}
			elem, err := ConvertStarlarkValueToInterface(item[1])
			if err != nil {
				return nil, fmt.Errorf("failed to convert dict value: %w", err)
			}
			dict[string(key)] = elem
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported Starlark type %s", v.Type())
	}
}
