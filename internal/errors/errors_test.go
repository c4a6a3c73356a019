package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mudforge/battle-api/internal/errors"
)

func TestErrorString(t *testing.T) {
	err := errors.NotFound("template missing")
	assert.Equal(t, "NOT_FOUND: template missing", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "redis unavailable")
	assert.Equal(t, "INTERNAL: redis unavailable: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("template missing")
	outer := errors.Wrap(inner, "constructing battle")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(outer))
	assert.True(t, errors.IsNotFound(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeFailedPrecondition,
		errors.GetCode(errors.FailedPrecondition("no attacks recorded")))
}

func TestValidationBuilder(t *testing.T) {
	vb := errors.NewValidationBuilder()
	require.NoError(t, vb.Build())

	vb.RequiredField("Roller")
	vb.Fieldf("StrikeBackInterval", "must be positive, got %d", -1)

	err := vb.Build()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Roller: is required")
	assert.Contains(t, err.Error(), "StrikeBackInterval: must be positive, got -1")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 404, errors.CodeNotFound.HTTPStatus())
	assert.Equal(t, 400, errors.CodeInvalidArgument.HTTPStatus())
	assert.Equal(t, 500, errors.CodeInternal.HTTPStatus())
}
