package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
)

type ReportRepositoryInterface interface {
	GetEquipmentUsage(ctx context.Context) ([]entities.EquipmentReportRow, error)
}

type ReportRepository struct {
	storage *pgxpool.Pool
}

func NewReportRepository(storage *pgxpool.Pool) ReportRepositoryInterface {
	return &ReportRepository{storage: storage}
}

// GetEquipmentUsage — весь справочник с количеством броней на каждую
// позицию: всего и активных (pending/confirmed).
func (r *ReportRepository) GetEquipmentUsage(ctx context.Context) ([]entities.EquipmentReportRow, error) {
	const query = `
		SELECT e.id, e.name, e.description, e.category, e.location, e.status, e.usage_type, e.image_url,
			e.brand, e.model, e.serial_number, e.inventory_number, e.classification,
			e.created_at, e.updated_at,
			COUNT(b.id) AS total_bookings,
			COUNT(b.id) FILTER (WHERE b.status IN ($1, $2)) AS active_bookings
		FROM equipments e
		LEFT JOIN bookings b ON b.equipment_id = e.id
		GROUP BY e.id
		ORDER BY e.name`

	rows, err := r.storage.Query(ctx, query, entities.BookingStatusPending, entities.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := make([]entities.EquipmentReportRow, 0)
	for rows.Next() {
		var row entities.EquipmentReportRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Category, &row.Location,
			&row.Status, &row.UsageType, &row.ImageURL,
			&row.Brand, &row.Model, &row.SerialNumber, &row.InventoryNumber, &row.Classification,
			&row.CreatedAt, &row.UpdatedAt,
			&row.TotalBookings, &row.ActiveBookings,
		); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}
