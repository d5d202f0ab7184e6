package model

import (
	"github.com/go-playground/validator/v10"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

// FilterAll disables a filter dimension
const FilterAll = "ALL"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	mustRegister(v, "severity", func(fl validator.FieldLevel) bool {
		return types.Severity(fl.Field().String()).IsValid()
	})
	mustRegister(v, "severity_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == FilterAll || types.Severity(s).IsValid()
	})
	mustRegister(v, "root_cause_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == FilterAll || types.RootCauseCategory(s).IsValid()
	})
	mustRegister(v, "mitigation_status", func(fl validator.FieldLevel) bool {
		return types.MitigationStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "trend", func(fl validator.FieldLevel) bool {
		return types.Trend(fl.Field().String()).IsValid()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
