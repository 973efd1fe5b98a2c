package utils

import (
	"fmt"
	"strings"

	"github.com/knetic/govaluate"
)

// BrightnessVariables are the names a brightness expression may reference.
var BrightnessVariables = []string{"R", "G", "B"}

// GetExpressionFunctions defines functions usable in brightness expressions.
func GetExpressionFunctions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		// Rec. 601 weighting, e.g. "luma(R, G, B)"
		"luma": func(args ...interface{}) (interface{}, error) {
			if len(args) != 3 {
				return nil, fmt.Errorf("luma expects 3 arguments (r, g, b)")
			}
			v, err := toFloats("luma", args)
			if err != nil {
				return nil, err
			}
			return 0.299*v[0] + 0.587*v[1] + 0.114*v[2], nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			v, err := toFloats("max", args)
			if err != nil {
				return nil, err
			}
			m := v[0]
			for _, f := range v[1:] {
				if f > m {
					m = f
				}
			}
			return m, nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			v, err := toFloats("min", args)
			if err != nil {
				return nil, err
			}
			m := v[0]
			for _, f := range v[1:] {
				if f < m {
					m = f
				}
			}
			return m, nil
		},
	}
}

// govaluate hands every number over as float64
func toFloats(name string, args []interface{}) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%s expects at least one argument", name)
	}
	out := make([]float64, len(args))
	for i, a := range args {
		f, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("arg %d of %s must be numeric", i+1, name)
		}
		out[i] = f
	}
	return out, nil
}

// CompileBrightness parses a brightness expression and checks that it only
// refers to the R, G and B channels.
func CompileBrightness(expr string) (*govaluate.EvaluableExpression, error) {
	if !IsValidExpression(expr) {
		return nil, fmt.Errorf("brightness expression is empty")
	}
	compiled, err := govaluate.NewEvaluableExpressionWithFunctions(expr, GetExpressionFunctions())
	if err != nil {
		return nil, fmt.Errorf("invalid brightness expression '%s': %w", expr, err)
	}
	for _, v := range compiled.Vars() {
		if !isBrightnessVariable(v) {
			return nil, fmt.Errorf("brightness expression '%s' refers to unknown variable '%s' (want one of %s)",
				expr, v, strings.Join(BrightnessVariables, ", "))
		}
	}
	return compiled, nil
}

func isBrightnessVariable(name string) bool {
	for _, v := range BrightnessVariables {
		if v == name {
			return true
		}
	}
	return false
}

func IsValidExpression(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" || trimmed == "..." {
		return false
	}
	return true
}
