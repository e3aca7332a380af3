package math

import (
	"errors"
	"fmt"

	"github.com/aretw0/graft/pkg/domain"
	"github.com/aretw0/graft/pkg/eval"
)

// Calculator returns the module's calculations.
func (m *Module) Calculator() (*eval.Calculator, error) {
	calc := eval.NewCalculator()
	for _, reg := range []struct {
		id string
		fn eval.CalcFunc
	}{
		{"constant", calcConstant},
		{"printer", m.calcPrinter},
		{"binop", calcBinop},
		{"sum", calcSum},
	} {
		if err := calc.Register(reg.id, reg.fn); err != nil {
			return nil, err
		}
	}
	return calc, nil
}

func calcConstant(n *domain.Node, _ []any) ([]any, error) {
	v, ok := n.Value("value")
	if !ok {
		return nil, errors.New("constant has no value")
	}
	return []any{v}, nil
}

func (m *Module) calcPrinter(_ *domain.Node, inputs []any) ([]any, error) {
	if _, err := fmt.Fprintln(m.out, inputs...); err != nil {
		return nil, err
	}
	return nil, nil
}

func calcBinop(n *domain.Node, inputs []any) ([]any, error) {
	if len(inputs) != 2 {
		return nil, fmt.Errorf("binop needs exactly 2 inputs, got %d", len(inputs))
	}
	a, err := asNumber(inputs[0])
	if err != nil {
		return nil, fmt.Errorf("input a: %w", err)
	}
	b, err := asNumber(inputs[1])
	if err != nil {
		return nil, fmt.Errorf("input b: %w", err)
	}

	opv, _ := n.Value("operator_name")
	op, _ := opv.(string)
	switch op {
	case "add":
		return []any{a + b}, nil
	case "sub":
		return []any{a - b}, nil
	case "mul":
		return []any{a * b}, nil
	case "div":
		if b == 0 {
			return nil, errors.New("division by zero")
		}
		return []any{a / b}, nil
	}
	return nil, fmt.Errorf("unknown operator %q", op)
}

func calcSum(n *domain.Node, inputs []any) ([]any, error) {
	total := 0.0
	for i, in := range inputs {
		v, err := asNumber(in)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		total += v
	}
	return []any{total}, nil
}

// asNumber widens the numeric kinds a value can arrive as. Property
// defaults are float64, but external surfaces may deliver ints.
func asNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, fmt.Errorf("not a number: %v (%T)", v, v)
}
