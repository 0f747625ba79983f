package internal

import (
	"fmt"
	"slices"

	"github.com/caoguofeng92/drools/platform/data"
	risorLib "github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// ConvertToRisorOptions wraps the name-value context in a single global
// named ctxKey. Inside the VM the context is a list of [name, value] lists.
//
// For example, if the input is [{age 30} {name ada}], the output will be:
//
//	[]risorLib.Option{
//	  risorLib.WithGlobal("ctx", [["age", 30], ["name", "ada"]]),
//	}
func ConvertToRisorOptions(ctxKey string, input data.Context) ([]risorLib.Option, error) {
	ctxObj, err := ConvertToRisorObject(input)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}
	return []risorLib.Option{
		risorLib.WithGlobal(ctxKey, ctxObj),
	}, nil
}

// ConvertToRisorObject converts a Go value to a Risor object. Slices,
// including name-value contexts, become lists; maps become maps.
func ConvertToRisorObject(v any) (object.Object, error) {
	if v == nil {
		return object.Nil, nil
	}

	switch val := v.(type) {
	case object.Object:
		return val, nil
	case bool:
		return object.NewBool(val), nil
	case int:
		return object.NewInt(int64(val)), nil
	case int32:
		return object.NewInt(int64(val)), nil
	case int64:
		return object.NewInt(val), nil
	case float32:
		return object.NewFloat(float64(val)), nil
	case float64:
		return object.NewFloat(val), nil
	case string:
		return object.NewString(val), nil
	case data.Context:
		return ConvertToRisorObject(val.Pairs())
	case []any:
		items := make([]object.Object, len(val))
		for i, elem := range val {
			var err error
			items[i], err = ConvertToRisorObject(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert list element: %w", err)
			}
		}
		return object.NewList(items), nil
	case map[string]any:
		items := make(map[string]object.Object, len(val))
		for k, elem := range val {
			obj, err := ConvertToRisorObject(elem)
			if err != nil {
				return nil, fmt.Errorf("failed to convert map value %q: %w", k, err)
			}
			items[k] = obj
		}
		return object.NewMap(items), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", v)
	}
}

// ConvertRisorObjectToInterface converts a Risor object to a Go value.
// Integers become int64. Error objects are returned as errors.
func ConvertRisorObjectToInterface(obj object.Object) (any, error) {
	if obj == nil {
		return nil, nil
	}

	switch val := obj.(type) {
	case *object.NilType:
		return nil, nil
	case *object.Bool:
		return val.Value(), nil
	case *object.Int:
		return val.Value(), nil
	case *object.Float:
		return val.Value(), nil
	case *object.String:
		return val.Value(), nil
	case *object.List:
		items := val.Value()
		out := make([]any, len(items))
		for i, item := range items {
			var err error
			out[i], err = ConvertRisorObjectToInterface(item)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case *object.Map:
		items := val.Value()
		keys := make([]string, 0, len(items))
		for k := range items {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		out := make(map[string]any, len(items))
		for _, k := range keys {
			v, err := ConvertRisorObjectToInterface(items[k])
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	case *object.Error:
		return nil, val.Value()
	default:
		return nil, fmt.Errorf("unsupported risor type %s", obj.Type())
	}
}
