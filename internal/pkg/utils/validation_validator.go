package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("priority", validatePriority)
	validate.RegisterValidation("record_status", validateRecordStatus)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePriority(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Normal" || value == "Urgent" || value == "Emergency"
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Pending" || value == "InProgress" || value == "Completed" || value == "Cancelled"
}
