package customerr

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_IsValidation_ShouldSeeThroughWrapping(t *testing.T) {
	err := errors.Wrap(NewValidation("description", "must not be blank"), "add transaction")

	assert.True(t, IsValidation(err))
	assert.False(t, IsStorage(err))
	assert.Equal(t, "add transaction: invalid description: must not be blank", err.Error())
}

func Test_StorageError_ShouldUnwrapCause(t *testing.T) {
	err := errors.Wrap(NewStorage("load", "dev.finances:alice:transactions", io.ErrUnexpectedEOF), "reload")

	assert.True(t, IsStorage(err))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), `storage load "dev.finances:alice:transactions"`)
}
