package validators

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// mx_zip: código postal mexicano, cinco dígitos.
func mxZip(fl validator.FieldLevel) bool {
	zip := fl.Field().String()
	if len(zip) != 5 {
		return false
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RegisterBindingRules engancha las reglas propias al validador de gin.
// Se llama una vez al arrancar.
func RegisterBindingRules() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("mx_zip", mxZip)
	}
}
