package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"gowrangle/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsCodeAndCause(t *testing.T) {
	inner := CacheError("failed to open telco.csv", fmt.Errorf("%w: permission denied", core.ErrCacheIO))
	err := Wrap(inner, "load telco")

	assert.Equal(t, CodeCacheError, GetCode(err))
	assert.True(t, stderrors.Is(err, core.ErrCacheIO))
	assert.Equal(t, "load telco: failed to open telco.csv: local cache i/o failed: permission denied", err.Error())
}

func TestWrap_PlainError(t *testing.T) {
	err := Wrapf(stderrors.New("boom"), "step %d", 3)
	assert.Equal(t, CodeInternalError, GetCode(err))
	assert.Equal(t, "step 3: boom", err.Error())

	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("x")))
}

func TestWithCode(t *testing.T) {
	err := WithCode(CodeSourceError, core.ErrSourceUnavailable, "telco_churn")
	assert.Equal(t, CodeSourceError, GetCode(err))
	assert.True(t, core.IsIOError(err))
}
