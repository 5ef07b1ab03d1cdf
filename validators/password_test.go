package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("12345"))
	assert.NoError(t, PasswordValidator("a perfectly fine password"))

	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("1234"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator("pw"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("x", 256)), ErrPasswordTooLong)

	assert.NoError(t, PasswordValidator(strings.Repeat("x", 255)))
}
