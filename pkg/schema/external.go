package schema

import (
	"fmt"
	"strconv"
)

// FromExternal accepts anything numeric, plus strings that parse as a
// float. The result is always a float64.
func (p *FloatProperty) FromExternal(repr any) (any, error) {
	switch v := repr.(type) {
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("float: cannot parse %q", v)
		}
		return f, nil
	default:
		f, ok := asFloat(repr)
		if !ok {
			return nil, fmt.Errorf("float: cannot convert %T", repr)
		}
		return f, nil
	}
}

func (p *FloatProperty) ToExternal(value any) any { return value }

// FromExternal accepts integers, whole-valued floats, and strings that
// parse as an integer. The result is always an int.
func (p *IntProperty) FromExternal(repr any) (any, error) {
	switch v := repr.(type) {
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("int: cannot parse %q", v)
		}
		return i, nil
	default:
		i, ok := asInt(repr)
		if !ok {
			return nil, fmt.Errorf("int: cannot convert %T", repr)
		}
		return i, nil
	}
}

func (p *IntProperty) ToExternal(value any) any { return value }

// FromExternal accepts strings only; membership is a validation
// concern, not a conversion concern.
func (p *ChoicesProperty) FromExternal(repr any) (any, error) {
	s, ok := repr.(string)
	if !ok {
		return nil, fmt.Errorf("choice: expected string, got %T", repr)
	}
	return s, nil
}

func (p *ChoicesProperty) ToExternal(value any) any { return value }

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
		return 0, false
	case float32:
		if float64(v) == float64(int64(v)) {
			return int(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}
