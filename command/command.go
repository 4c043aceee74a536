// Package command evaluates almost.Almost operations given as command line words.
package command

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shvyrev/jtk/helper/errs"
	"github.com/shvyrev/jtk/pkg/almost"
	"github.com/shvyrev/jtk/pkg/scope"
)

type command struct {
	usage string
	min   int // arguments
	max   int
	run   func(a almost.Almost, args []string) (string, error)
}

var commands = map[string]command{
	"cmp": {"cmp x y", 2, 2, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			c, err := a.Cmp(v[0], v[1])
			if err != nil {
				return "", err
			}
			return strconv.Itoa(c), nil
		})
	}},
	"equal": predicate("equal x y", a2(almost.Almost.Equal)),
	"lt":    predicate("lt x y", a2(almost.Almost.Lt)),
	"le":    predicate("le x y", a2(almost.Almost.Le)),
	"gt":    predicate("gt x y", a2(almost.Almost.Gt)),
	"ge":    predicate("ge x y", a2(almost.Almost.Ge)),
	"between": predicate("between x b1 b2", func(a almost.Almost, v []float64) bool {
		return a.Between(v[0], v[1], v[2])
	}),
	"zero": {"zero x", 1, 1, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			return strconv.FormatBool(a.Zero(v[0])), nil
		})
	}},
	"outside": {"outside x b1 b2", 3, 3, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			if err := notNaN(v); err != nil {
				return "", err
			}
			return strconv.Itoa(a.Outside(v[0], v[1], v[2])), nil
		})
	}},
	"divide": {"divide n d [value-if-zero-over-zero]", 2, 3, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			var value float64
			if len(v) == 3 {
				value = v[2]
			}
			return formatFloat(a.Divide(v[0], v[1], value)), nil
		})
	}},
	"reciprocal": {"reciprocal x", 1, 1, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			return formatFloat(a.Reciprocal(v[0])), nil
		})
	}},
	"hash": {"hash v [significant-digits]", 1, 2, func(a almost.Almost, args []string) (string, error) {
		digits := a.SignificantDigits()
		if len(args) == 2 {
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return "", errs.NewErrorfWithCode(errs.CodeUsage, "bad significant digits %q", args[1])
			}
			digits = d
		}
		return floats(args[:1], func(v []float64) (string, error) {
			return strconv.FormatInt(a.HashCodeOf(v[0], digits), 10), nil
		})
	}},
}

// Usage returns one line per command
func Usage() string {
	lines := make([]string, 0, len(commands))
	for _, c := range commands {
		lines = append(lines, c.usage)
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

// Run evaluates args[0] with the rest of args as operands and returns the printable result.
// Errors carry errs.CodeUsage for bad command lines and errs.CodeFailure otherwise.
func Run(ctx context.Context, a almost.Almost, args []string) (string, error) {
	if len(args) == 0 {
		return "", errs.NewErrorWithCode("no command given", errs.CodeUsage)
	}

	name, operands := args[0], args[1:]
	ctx = scope.WithCommand(ctx, name)
	logger := scope.Logger(ctx)

	c, ok := commands[name]
	if !ok {
		return "", errs.NewErrorfWithCode(errs.CodeUsage, "unknown command %q", name)
	}
	if len(operands) < c.min || len(operands) > c.max {
		return "", errs.NewErrorfWithCode(errs.CodeUsage, "usage: %s", c.usage)
	}

	result, err := c.run(a, operands)
	if err != nil {
		if _, ok := err.(errs.ErrorWithCode); !ok {
			err = errs.WithCode(err, errs.CodeFailure)
		}
		logger.Error("evaluate",
			zap.Strings("args", operands),
			zap.Stringer("almost", a),
			zap.Error(err),
		)
		return "", err
	}

	logger.Debug("evaluate",
		zap.Strings("args", operands),
		zap.Stringer("almost", a),
		zap.String("result", result),
	)

	return result, nil
}

func predicate(usage string, f func(a almost.Almost, v []float64) bool) command {
	n := len(strings.Fields(usage)) - 1
	return command{usage, n, n, func(a almost.Almost, args []string) (string, error) {
		return floats(args, func(v []float64) (string, error) {
			if err := notNaN(v); err != nil {
				return "", err
			}
			return strconv.FormatBool(f(a, v)), nil
		})
	}}
}

func a2(f func(almost.Almost, float64, float64) bool) func(almost.Almost, []float64) bool {
	return func(a almost.Almost, v []float64) bool {
		return f(a, v[0], v[1])
	}
}

// floats parses args and passes them to f
func floats(args []string, f func(v []float64) (string, error)) (string, error) {
	v := make([]float64, len(args))
	for i, s := range args {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", errs.NewErrorfWithCode(errs.CodeUsage, "bad number %q", s)
		}
		v[i] = x
	}
	return f(v)
}

// notNaN reports NaN operands with the same error as almost.Almost.Cmp
func notNaN(v []float64) error {
	for _, x := range v {
		if math.IsNaN(x) {
			return errors.Wrapf(almost.ErrNaN, "operands %v", v)
		}
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
