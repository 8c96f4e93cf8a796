package common

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBase36(t *testing.T) {
	for _, id := range []int64{1, 35, 36, 1295, 123456789} {
		got, err := ParseBase36(Base36(id))
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	}

	assert.Equal(t, "z", Base36(35))
	assert.Equal(t, "10", Base36(36))

	got, err := ParseBase36("ZZ")
	assert.NoError(t, err)
	assert.Equal(t, int64(1295), got)

	for _, bad := range []string{"", "!!", "-1", "0"} {
		_, err := ParseBase36(bad)
		assert.ErrorIs(t, err, ErrBadBase36, bad)
	}
}

func TestHashPass(t *testing.T) {
	h := HashPass("secret", "12345678")
	assert.Equal(t, "12345678", string(h[:8]))
	assert.Equal(t, h, HashPass("secret", "12345678"))
	assert.NotEqual(t, h, HashPass("other", "12345678"))
}

func TestWriteMsg(t *testing.T) {
	w := httptest.NewRecorder()
	WriteMsg(w, "nope", 403)
	assert.Equal(t, 403, w.Code)
	assert.JSONEq(t, `{"message":"nope"}`, w.Body.String())
}
