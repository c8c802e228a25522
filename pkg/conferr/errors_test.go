package conferr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToKindMessage(t *testing.T) {
	err := New(KindIO, nil)
	require.Error(t, err)
	assert.Equal(t, "io", err.Error())
	assert.Equal(t, KindIO, KindOf(err))
}

func TestNewfKeepsSentinel(t *testing.T) {
	err := Newf(KindValidation, ErrUnknownOption, "%q", "foo")
	assert.True(t, errors.Is(err, ErrUnknownOption))
	assert.Equal(t, `unknown option name: "foo"`, err.Error())
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestKindOfUnclassified(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestParseErrorFormat(t *testing.T) {
	inner := New(KindParse, ErrMissingEquals)
	err := error(&ParseError{Line: 3, Text: " foo bar baz", Err: inner})

	assert.Equal(t, `parse error: expected "name = value": line 3:  foo bar baz`, err.Error())
	assert.True(t, errors.Is(err, ErrMissingEquals))

	var pe *ParseError
	require.True(t, errors.As(fmt.Errorf("read: %w", err), &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, KindParse, KindOf(err))
}
