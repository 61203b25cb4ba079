package parse_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotast/kotast/parse"
)

func TestErrorsAccumulation(t *testing.T) {
	var errs parse.Errors
	assert.NoError(t, errs.Err())

	errs = append(errs, &parse.Error{Message: "stray token", Offset: 4})
	errs = append(errs, &parse.Error{Message: "unterminated string", Offset: 19})

	err := errs.Err()
	require.Error(t, err)
	assert.Equal(t,
		"parse: stray token at offset 4; parse: unterminated string at offset 19",
		err.Error())
}

func TestIsUnsupported(t *testing.T) {
	err := parse.Unsupportedf("element kind %q", "MACRO")
	assert.True(t, parse.IsUnsupported(err))
	assert.Equal(t, `parse: unsupported construct: element kind "MACRO"`, err.Error())

	wrapped := fmt.Errorf("converting file: %w", err)
	assert.True(t, parse.IsUnsupported(wrapped))

	assert.False(t, parse.IsUnsupported(errors.New("plain")))
}
