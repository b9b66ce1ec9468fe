package status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPULoadDelimitedOutput(t *testing.T) {
	r := &fakeRunner{out: map[string]string{
		"wmic": "Node,CPU,LoadPercentage\r\n,0,37 \r\n",
	}}

	load, err := CPULoad(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 37, load)
}

func TestCPULoadFixedWidthOutput(t *testing.T) {
	out := "Caption      LoadPercentage  Name\r\n" +
		"Intel64      42              Intel(R) Core(TM)\r\n"
	r := &fakeRunner{out: map[string]string{"wmic": out}}

	load, err := CPULoad(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 42, load)
}

func TestCPULoadMissingColumn(t *testing.T) {
	r := &fakeRunner{out: map[string]string{
		"wmic": "Node,CPU,Name\r\n,0,Intel \r\n",
	}}

	_, err := CPULoad(context.Background(), r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoadPercentage")
}

func TestCPULoadShortOutput(t *testing.T) {
	r := &fakeRunner{out: map[string]string{"wmic": "LoadPercentage"}}

	_, err := CPULoad(context.Background(), r)
	require.Error(t, err)
}

func TestCPULoadCommandFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1")}

	_, err := CPULoad(context.Background(), r)
	require.Error(t, err)
}

func TestCPULoadIdempotent(t *testing.T) {
	r := &fakeRunner{out: map[string]string{
		"wmic": "Node,CPU,LoadPercentage\r\n,0,37 \r\n",
	}}

	first, err := CPULoad(context.Background(), r)
	require.NoError(t, err)
	second, err := CPULoad(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
