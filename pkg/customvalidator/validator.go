package customvalidator

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

// RegisterCustomValidations регистрирует доменные правила валидации.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("booking_date", isBookingDate); err != nil {
		return err
	}
	if err := v.RegisterValidation("time_slot", isTimeSlot); err != nil {
		return err
	}
	if err := v.RegisterValidation("usage_type", isUsageType); err != nil {
		return err
	}
	return nil
}

func isBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(entities.BookingDateLayout, fl.Field().String())
	return err == nil
}

func isTimeSlot(fl validator.FieldLevel) bool {
	return entities.IsValidTimeSlot(fl.Field().String())
}

func isUsageType(fl validator.FieldLevel) bool {
	return entities.IsValidUsageType(fl.Field().String())
}
