package status

import (
	"context"
	"errors"
)

// fakeRunner returns canned output keyed by command name.
type fakeRunner struct {
	out  map[string]string
	err  error
	runs []string
}

func (f *fakeRunner) Run(_ context.Context, name string, _ ...string) (string, error) {
	f.runs = append(f.runs, name)
	if f.err != nil {
		return "", f.err
	}
	out, ok := f.out[name]
	if !ok {
		return "", errors.New("unexpected command: " + name)
	}
	return out, nil
}
