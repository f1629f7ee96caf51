package inspect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Unwrap(t *testing.T) {
	base := errors.New("bad filter")
	err := configErr("inspect.Run", base)

	assert.ErrorIs(t, err, base)

	var e *Error
	assert.ErrorAs(t, error(err), &e)
	assert.Equal(t, KindConfiguration, e.Kind)
	assert.Equal(t, "inspect.Run", e.Op)
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: "inspect.InspectAll", Kind: KindParse, Err: errors.New("boom"), File: "a.yaml"}
	assert.Contains(t, err.Error(), "inspect.InspectAll")
	assert.Contains(t, err.Error(), "parse")
	assert.Contains(t, err.Error(), "a.yaml")
	assert.Contains(t, err.Error(), "boom")

	bare := &Error{Op: "inspect.Run", Kind: KindTraversal}
	assert.Contains(t, bare.Error(), "traversal")
}
