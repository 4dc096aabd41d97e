package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	t.Run("maps known codes", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, GetHTTPStatus(ErrCodeNotFound))
		assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus(ErrCodeUnauthorized))
		assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus(ErrCodeEmptyCart))
		assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeLoginSuperseded))
		assert.Equal(t, http.StatusBadRequest, GetHTTPStatus(ErrCodeValidation))
	})

	t.Run("unknown codes default to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("ERR_SOMETHING_NEW"))
	})
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
	assert.Equal(t, ErrCodeEmptyCart, NormalizeErrorCode("EMPTY_CART"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_CATEGORY"))
	assert.Equal(t, ErrCodeInternal, NormalizeErrorCode(ErrCodeInternal))
	assert.Equal(t, "CUSTOM", NormalizeErrorCode("CUSTOM"))
}
