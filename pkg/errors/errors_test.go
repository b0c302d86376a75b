package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/pathtidy/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := errors.New(errors.ErrEnvWrite, "failed to persist user scope")
	assert.Equal(t, "[ENV_WRITE] failed to persist user scope", plain.Error())

	wrapped := errors.Wrap(fmt.Errorf("access denied"), errors.ErrEnvWrite, "failed to persist system scope")
	assert.Equal(t, "[ENV_WRITE] failed to persist system scope: access denied", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrEnvWrite, "ignored"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrEnvWrite, "ignored %s", "too"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("registry locked")
	err := errors.Wrap(cause, errors.ErrEnvWritePartial, "user scope write failed after system scope succeeded")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestIsMatchesOnCode(t *testing.T) {
	err := errors.Newf(errors.ErrBackupNotFound, "no snapshot %q", "20240101-120000")
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrBackupNotFound, "")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrBackupWrite, "")))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigParse, errors.GetCode(errors.New(errors.ErrConfigParse, "bad toml")))
	assert.Equal(t, errors.ErrUnknown, errors.GetCode(fmt.Errorf("plain error")))
	assert.True(t, errors.IsCode(errors.New(errors.ErrEnvRead, "x"), errors.ErrEnvRead))
	assert.False(t, errors.IsCode(fmt.Errorf("plain"), errors.ErrEnvRead))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrEnvWrite, "write failed").WithDetail("scope", "user")
	assert.Equal(t, "user", err.Details["scope"])
}
