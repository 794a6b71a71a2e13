package value

import "fmt"

// Infer maps a dynamically typed payload, e.g. a parameter decoded from
// a YAML profile, onto the closed kind set. Unlike New it cannot trust
// the payload shape, so unsupported shapes are reported as errors.
func Infer(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case Value:
		return x, nil
	case float64:
		return NewReal(x), nil
	case float32:
		return NewReal(float64(x)), nil
	case int:
		return NewInt(x), nil
	case int64:
		return NewInt(int(x)), nil
	case string:
		return NewString(x), nil
	case complex128:
		return NewComplex(x), nil
	case []float64:
		return NewRealVec(x), nil
	case []string:
		return NewStringVec(x), nil
	case [][]float64:
		return NewRealVecVec(x), nil
	case map[string]interface{}:
		pool := make(map[string]Value, len(x))
		for name, entry := range x {
			v, err := Infer(entry)
			if err != nil {
				return Value{}, fmt.Errorf("pool entry %q: %w", name, err)
			}
			pool[name] = v
		}
		return NewPool(pool), nil
	case []interface{}:
		return inferSlice(x)
	}
	return Value{}, fmt.Errorf("value: cannot infer kind of %T", raw)
}

func inferSlice(raw []interface{}) (Value, error) {
	if reals, ok := realsOf(raw); ok {
		return NewRealVec(reals), nil
	}
	if strings, ok := stringsOf(raw); ok {
		return NewStringVec(strings), nil
	}
	nested := make([][]float64, 0, len(raw))
	for _, entry := range raw {
		inner, ok := entry.([]interface{})
		if !ok {
			return Value{}, fmt.Errorf("value: cannot infer kind of mixed slice")
		}
		reals, ok := realsOf(inner)
		if !ok {
			return Value{}, fmt.Errorf("value: cannot infer kind of mixed slice")
		}
		nested = append(nested, reals)
	}
	return NewRealVecVec(nested), nil
}

func realsOf(raw []interface{}) ([]float64, bool) {
	reals := make([]float64, len(raw))
	for i, entry := range raw {
		switch x := entry.(type) {
		case float64:
			reals[i] = x
		case float32:
			reals[i] = float64(x)
		case int:
			reals[i] = float64(x)
		case int64:
			reals[i] = float64(x)
		default:
			return nil, false
		}
	}
	return reals, true
}

func stringsOf(raw []interface{}) ([]string, bool) {
	strings := make([]string, len(raw))
	for i, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			return nil, false
		}
		strings[i] = s
	}
	return strings, true
}
