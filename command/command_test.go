package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/shvyrev/jtk/helper/errs"
	"github.com/shvyrev/jtk/pkg/almost"
	"github.com/shvyrev/jtk/pkg/scope"
)

func TestRun(t *testing.T) {
	a4, err := almost.NewSignificantDigits(4)
	require.NoError(t, err)

	tests := []struct {
		almost almost.Almost
		args   []string
		want   string
	}{
		{almost.New(), []string{"cmp", "1", "2"}, "-1"},
		{almost.New(), []string{"cmp", "2", "1"}, "1"},
		{almost.New(), []string{"cmp", "1", "1.000000000001"}, "0"},
		{almost.New(), []string{"equal", "3.1415", "3.1415926"}, "false"},
		{a4, []string{"equal", "3.1415", "3.1415926"}, "true"},
		{almost.New(), []string{"lt", "1", "2"}, "true"},
		{almost.New(), []string{"le", "2", "2"}, "true"},
		{almost.New(), []string{"gt", "1", "1"}, "false"},
		{almost.New(), []string{"ge", "0", "1"}, "false"},
		{almost.New(), []string{"zero", "0"}, "true"},
		{almost.New(), []string{"zero", "1e-30"}, "false"},
		{almost.New(), []string{"between", "1", "0", "2"}, "true"},
		{almost.New(), []string{"between", "3", "2", "0"}, "false"},
		{almost.New(), []string{"outside", "-1", "-0.5", "-0.9"}, "1"},
		{almost.New(), []string{"outside", "-1", "-1.1", "-2"}, "-1"},
		{almost.New(), []string{"outside", "1", "0", "2"}, "0"},
		{almost.New(), []string{"divide", "1", "2"}, "0.5"},
		{almost.New(), []string{"divide", "0", "0"}, "0"},
		{almost.New(), []string{"divide", "0", "0", "5"}, "5"},
		{almost.New(), []string{"divide", "1", "0", "1"}, formatFloat(almost.Big)},
		{almost.New(), []string{"divide", "-1", "0", "1"}, formatFloat(-almost.Big)},
		{almost.New(), []string{"reciprocal", "2"}, "0.5"},
		{almost.New(), []string{"hash", "314.15926", "3"}, "314"},
		{almost.New(), []string{"hash", "0"}, "0"},
		{almost.New(), []string{"hash", "7"}, "7"},
	}

	for _, tt := range tests {
		got, err := Run(context.Background(), tt.almost, tt.args)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, got, "%v", tt.args)
	}

	h1, err := Run(context.Background(), a4, []string{"hash", "0.0031415"})
	require.NoError(t, err)
	h2, err := Run(context.Background(), a4, []string{"hash", "0.0031415926"})
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		args []string
		code int
	}{
		{nil, errs.CodeUsage},
		{[]string{"unknown"}, errs.CodeUsage},
		{[]string{"equal", "1"}, errs.CodeUsage},
		{[]string{"equal", "1", "2", "3"}, errs.CodeUsage},
		{[]string{"equal", "one", "2"}, errs.CodeUsage},
		{[]string{"hash", "1", "many"}, errs.CodeUsage},
		{[]string{"cmp", "NaN", "1"}, errs.CodeFailure},
		{[]string{"equal", "1", "NaN"}, errs.CodeFailure},
		{[]string{"between", "1", "0", "NaN"}, errs.CodeFailure},
		{[]string{"outside", "NaN", "0", "1"}, errs.CodeFailure},
	}

	for _, tt := range tests {
		_, err := Run(context.Background(), almost.New(), tt.args)
		require.Error(t, err, "%v", tt.args)
		assert.Equal(t, tt.code, errs.Code(err), "%v: %v", tt.args, err)
		if tt.code == errs.CodeFailure {
			assert.ErrorIs(t, err, almost.ErrNaN, "%v", tt.args)
		}
	}
}

func TestRunLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := scope.WithLogger(context.Background(), zap.New(core))

	_, err := Run(ctx, almost.New(), []string{"cmp", "1", "2"})
	require.NoError(t, err)
	_, err = Run(ctx, almost.New(), []string{"cmp", "NaN", "2"})
	require.Error(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "cmp", entries[0].ContextMap()["command"])
	assert.Equal(t, "-1", entries[0].ContextMap()["result"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["error"], "not a number")
}

func TestUsage(t *testing.T) {
	usage := Usage()
	assert.Contains(t, usage, "between x b1 b2")
	assert.Contains(t, usage, "hash v [significant-digits]")
	assert.Len(t, strings.Split(usage, "\n"), len(commands))
}

