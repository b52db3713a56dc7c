package dto

// CreateBookingDTO — заявка на бронь слота. UserID опционален: без него
// подставляется пользователь по умолчанию (аутентификации в системе нет).
type CreateBookingDTO struct {
	EquipmentID            string `json:"equipmentId" validate:"required"`
	UserID                 int64  `json:"userId" validate:"omitempty,gt=0"`
	Date                   string `json:"date" validate:"required,booking_date"`
	TimeSlot               string `json:"timeSlot" validate:"required,time_slot"`
	Purpose                string `json:"purpose" validate:"required"`
	AdditionalRequirements string `json:"additionalRequirements"`
}

type AvailableSlotsDTO struct {
	AvailableSlots []string `json:"availableSlots"`
}
