package handler

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// validExpiry checks a card expiry in MM/YY form
func validExpiry(fl validator.FieldLevel) bool {
	return expiryPattern.MatchString(fl.Field().String())
}

var registerOnce sync.Once

// RegisterValidations installs custom binding validators. Safe to call
// more than once; registration only happens on the first call.
func RegisterValidations() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("expiry", validExpiry)
		}
	})
}
