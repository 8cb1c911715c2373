package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("posts/hello.md", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "posts/hello.md", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: posts/hello.md:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("themes.toml", 0, stdErrors.New("bad table"))
	require.Equal(t, "parse error: themes.toml: bad table", err.Error())
}

func TestValidationErrorIncludesPathAndField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("posts/hello.md", "publishDate", "is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "publishDate", validationErr.Field)
	require.Equal(t, "validation error: posts/hello.md: publishDate: is required", err.Error())
}

func TestValidationErrorWithoutPath(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "", "catalog is empty", nil)
	require.Equal(t, "validation error: catalog is empty", err.Error())
}

func TestStorageErrorWrapsCause(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("quota exceeded")
	err := NewStorageError("write", "theme-preference", underlying)

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	require.Equal(t, "write", storageErr.Op)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), `"theme-preference"`)
}
