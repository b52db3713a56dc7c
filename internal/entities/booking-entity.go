package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Статусы брони. pending зарезервирован под будущий шаг подтверждения,
// сейчас бронь создаётся сразу подтверждённой.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// BookingDateLayout — календарная дата брони в JSON и в query-параметрах.
const BookingDateLayout = "2006-01-02"

// TimeSlots — канонический набор слотов. В исходной системе жили два
// несогласованных набора (двухчасовой и часовой); оставлен двухчасовой,
// которым пользовался расчёт доступности.
var TimeSlots = []string{
	"9:00-11:00",
	"11:00-13:00",
	"13:00-15:00",
	"15:00-17:00",
}

func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// IsTerminalBookingStatus — из cancelled и completed бронь не возвращается.
func IsTerminalBookingStatus(s string) bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type Booking struct {
	ID                     int64       `json:"id"`
	EquipmentID            string      `json:"equipmentId"`
	UserID                 int64       `json:"userId"`
	Date                   string      `json:"date"`
	TimeSlot               string      `json:"timeSlot"`
	Purpose                string      `json:"purpose"`
	AdditionalRequirements null.String `json:"additionalRequirements"`
	Status                 string      `json:"status"`
	CreatedAt              time.Time   `json:"createdAt"`
}

// BookingWithEquipment — бронь вместе с текущим (не на момент создания)
// снимком оборудования.
type BookingWithEquipment struct {
	Booking
	Equipment *Equipment `json:"equipment"`
}
