package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
)

const bookingFields = `id, equipment_id, user_id, date, time_slot, purpose, additional_requirements, status, created_at`

type BookingRepositoryInterface interface {
	CreateBookingTx(ctx context.Context, tx pgx.Tx, b *entities.Booking) error
	FindBooking(ctx context.Context, id int64) (*entities.Booking, error)
	FindBookingTx(ctx context.Context, tx pgx.Tx, id int64) (*entities.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]entities.BookingWithEquipment, error)
	SlotTakenTx(ctx context.Context, tx pgx.Tx, equipmentID, date, timeSlot string) (bool, error)
	BookedSlots(ctx context.Context, equipmentID, date string) ([]string, error)
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status string) error
}

type BookingRepository struct {
	storage *pgxpool.Pool
}

func NewBookingRepository(storage *pgxpool.Pool) BookingRepositoryInterface {
	return &BookingRepository{storage: storage}
}

func scanBooking(row pgx.Row) (*entities.Booking, error) {
	var b entities.Booking
	var date time.Time
	err := row.Scan(
		&b.ID, &b.EquipmentID, &b.UserID, &date, &b.TimeSlot,
		&b.Purpose, &b.AdditionalRequirements, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	b.Date = date.Format(entities.BookingDateLayout)
	return &b, nil
}

// CreateBookingTx вставляет бронь в рамках транзакции ленты и заполняет
// сгенерированные id и created_at на переданной записи.
func (r *BookingRepository) CreateBookingTx(ctx context.Context, tx pgx.Tx, b *entities.Booking) error {
	const query = `
		INSERT INTO bookings (equipment_id, user_id, date, time_slot, purpose, additional_requirements, status)
		VALUES ($1, $2, $3::date, $4, $5, $6, $7)
		RETURNING id, created_at`

	return tx.QueryRow(ctx, query,
		b.EquipmentID, b.UserID, b.Date, b.TimeSlot,
		b.Purpose, b.AdditionalRequirements, b.Status,
	).Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepository) FindBooking(ctx context.Context, id int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingFields + ` FROM bookings WHERE id = $1`
	return scanBooking(r.storage.QueryRow(ctx, query, id))
}

// FindBookingTx читает бронь с блокировкой строки: отмена проверяет статус
// и пишет новый в одной транзакции.
func (r *BookingRepository) FindBookingTx(ctx context.Context, tx pgx.Tx, id int64) (*entities.Booking, error) {
	query := `SELECT ` + bookingFields + ` FROM bookings WHERE id = $1 FOR UPDATE`
	return scanBooking(tx.QueryRow(ctx, query, id))
}

// ListByUser возвращает брони пользователя с текущим снимком оборудования,
// новые сверху.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]entities.BookingWithEquipment, error) {
	const query = `
		SELECT b.id, b.equipment_id, b.user_id, b.date, b.time_slot, b.purpose,
			b.additional_requirements, b.status, b.created_at,
			e.id, e.name, e.description, e.category, e.location, e.status, e.usage_type, e.image_url,
			e.brand, e.model, e.serial_number, e.inventory_number, e.classification,
			e.created_at, e.updated_at
		FROM bookings b
		JOIN equipments e ON e.id = b.equipment_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC`

	rows, err := r.storage.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.BookingWithEquipment, 0)
	for rows.Next() {
		var item entities.BookingWithEquipment
		var eq entities.Equipment
		var date time.Time
		if err := rows.Scan(
			&item.ID, &item.EquipmentID, &item.UserID, &date, &item.TimeSlot,
			&item.Purpose, &item.AdditionalRequirements, &item.Status, &item.CreatedAt,
			&eq.ID, &eq.Name, &eq.Description, &eq.Category, &eq.Location,
			&eq.Status, &eq.UsageType, &eq.ImageURL,
			&eq.Brand, &eq.Model, &eq.SerialNumber, &eq.InventoryNumber, &eq.Classification,
			&eq.CreatedAt, &eq.UpdatedAt,
		); err != nil {
			return nil, err
		}
		item.Date = date.Format(entities.BookingDateLayout)
		item.Equipment = &eq
		list = append(list, item)
	}
	return list, rows.Err()
}

// SlotTakenTx — есть ли на (оборудование, дата, слот) неотменённая бронь.
func (r *BookingRepository) SlotTakenTx(ctx context.Context, tx pgx.Tx, equipmentID, date, timeSlot string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE equipment_id = $1 AND date = $2::date AND time_slot = $3 AND status <> $4
		)`

	var taken bool
	err := tx.QueryRow(ctx, query, equipmentID, date, timeSlot, entities.BookingStatusCancelled).Scan(&taken)
	return taken, err
}

// BookedSlots — слоты даты, занятые неотменёнными бронями.
func (r *BookingRepository) BookedSlots(ctx context.Context, equipmentID, date string) ([]string, error) {
	const query = `
		SELECT time_slot FROM bookings
		WHERE equipment_id = $1 AND date = $2::date AND status <> $3`

	rows, err := r.storage.Query(ctx, query, equipmentID, date, entities.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := make([]string, 0)
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

func (r *BookingRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id int64, status string) error {
	result, err := tx.Exec(ctx, `UPDATE bookings SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
