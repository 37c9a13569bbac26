package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := Wrap(errors.New("boom"), CodeIO, "read file").WithContext(CtxPath, "a.php")

	assert.Equal(t, "[IO] read file: boom (path=a.php)", err.Error())
}

func TestIsCodeThroughWrapping(t *testing.T) {
	base := New(CodeConfig, "missing option").WithContext(CtxOption, "resetMethodName").WithContext(CtxRule, "R")
	wrapped := fmt.Errorf("build rules: %w", base)

	assert.True(t, IsCode(wrapped, CodeConfig))
	assert.False(t, IsCode(wrapped, CodeParse))
	assert.Equal(t, CodeConfig, CodeOf(wrapped))
	assert.Equal(t, "[CONFIG] missing option (option=resetMethodName, rule=R)", base.Error())
}

func TestAddContext(t *testing.T) {
	direct := New(CodeConfig, "bad value")
	assert.Same(t, direct, AddContext(direct, CtxPath, "a.yaml"))
	assert.Equal(t, "[CONFIG] bad value (path=a.yaml)", direct.Error())

	inner := New(CodeParse, "syntax error")
	coded := fmt.Errorf("x: %w", inner)

	withPath := AddContext(coded, CtxPath, "b.php")
	assert.Equal(t, "x: [PARSE] syntax error (path=b.php)", withPath.Error())
	assert.True(t, IsCode(withPath, CodeParse))
	assert.Empty(t, inner.Context, "the inner error is left untouched")

	withRule := AddContext(withPath, CtxRule, "R")
	assert.Equal(t, "x: [PARSE] syntax error (path=b.php, rule=R)", withRule.Error())

	plain := AddContext(errors.New("plain"), CtxPath, "c.php")
	assert.True(t, IsCode(plain, CodeInternal))
	assert.Equal(t, "[INTERNAL] wrapped error: plain (path=c.php)", plain.Error())
	assert.Empty(t, CodeOf(errors.New("other")))
}
