package validation

import (
	"net/http"

	"github.com/example/oiladmin/pkg/models"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the validator shared by all handlers. The enum tags are backed
// by the model-level value sets so the allowed values live in one place.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	registerEnum(v, "orderstatus", models.ValidOrderStatus)
	registerEnum(v, "paymentstatus", models.ValidPaymentStatus)
	registerEnum(v, "contactstatus", models.ValidContactStatus)
	return v
}

func registerEnum(v *validatorv10.Validate, tag string, valid func(string) bool) {
	// RegisterValidation only fails on an empty tag name.
	_ = v.RegisterValidation(tag, func(fl validatorv10.FieldLevel) bool {
		return valid(fl.Field().String())
	})
}

// BindAndValidate binds the JSON body into out and runs validation. On any
// failure it writes a 400 envelope with errMsg and returns an error so the
// handler can short-circuit before touching the store.
func BindAndValidate(c *gin.Context, out interface{}, v *validatorv10.Validate, errMsg string) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return err
	}
	if err := v.Struct(out); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errMsg})
		return err
	}
	return nil
}
