package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.MinLenString("name", "abc", 1),
			validator.MaxNum("age", 10, 20),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failure", func(t *testing.T) {
		err := validator.Apply(
			validator.MinLenString("name", "", 1),
			validator.MaxNum("age", 30, 20),
			validator.MinLenSlice("tags", []string{}, 1),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"name", "age", "tags"}, verrs.Fields())
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))
	})

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestAtIndex(t *testing.T) {
	rule := validator.AtIndex(validator.MaxLenString("keywords", "toolong", 3), 2)
	require.NotNil(t, rule.Error.Index)
	assert.Equal(t, 2, *rule.Error.Index)
	assert.Equal(t, "keywords[2]", rule.Error.Path())

	err := validator.Apply(rule)
	assert.EqualError(t, err, "validation failed: keywords[2]: must be at most 3 characters long")
}

func TestFail(t *testing.T) {
	rule := validator.Fail("domainLength", validator.CodeType, "expected number")
	assert.False(t, rule.Check())
	assert.Equal(t, validator.CodeType, rule.Error.Code)
}

func TestValidationErrors(t *testing.T) {
	var verrs validator.ValidationErrors
	assert.True(t, verrs.IsEmpty())
	assert.Equal(t, "validation failed", verrs.Error())

	verrs.Add(validator.ValidationError{Field: "a", Code: validator.CodeRequired, Message: "required"})
	verrs.Add(validator.ValidationError{Field: "a", Code: validator.CodeType, Message: "bad type"})
	verrs.Add(validator.ValidationError{Field: "b", Code: validator.CodeMax, Message: "too big"})

	assert.True(t, verrs.Has("a"))
	assert.False(t, verrs.Has("c"))
	assert.Len(t, verrs.Get("a"), 2)
	assert.Equal(t, []string{"a", "b"}, verrs.Fields())
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", validator.Apply(validator.MinNum("n", 1, 2)))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "n", verrs[0].Field)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
}
