package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/dto"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/internal/entities"
	db "github.com/Ivkin-Alexey/mylaboratory-sub000/internal/infrastructure/bd"
	apperrors "github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/errors"
	"github.com/Ivkin-Alexey/mylaboratory-sub000/pkg/types"
)

const equipmentTable = "equipments"

const equipmentFields = `id, name, description, category, location, status, usage_type, image_url,
	brand, model, serial_number, inventory_number, classification, created_at, updated_at`

// equipmentFilterMap — фасеты, разрешённые в списковых запросах.
var equipmentFilterMap = map[string]string{
	"category":  "category",
	"status":    "status",
	"usageType": "usage_type",
	"name":      "name",
	"createdAt": "created_at",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	FindByCategory(ctx context.Context, category string) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error)
	LockEquipment(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error)
	UpdateStatus(ctx context.Context, id string, status string) error
	UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status string) error
	UpsertFromCatalog(ctx context.Context, eq entities.Equipment) (bool, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &e.Category, &e.Location,
		&e.Status, &e.UsageType, &e.ImageURL,
		&e.Brand, &e.Model, &e.SerialNumber, &e.InventoryNumber, &e.Classification,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func collectEquipments(rows pgx.Rows) ([]entities.Equipment, error) {
	defer rows.Close()
	list := make([]entities.Equipment, 0)
	for rows.Next() {
		var e entities.Equipment
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.Category, &e.Location,
			&e.Status, &e.UsageType, &e.ImageURL,
			&e.Brand, &e.Model, &e.SerialNumber, &e.InventoryNumber, &e.Classification,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// GetEquipments — списковый запрос справочника с фасетами, локальным
// подстрочным поиском и пагинацией.
func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, uint64, error) {
	base := sq.Select(equipmentFields).
		From(equipmentTable).
		PlaceholderFormat(sq.Dollar)
	base = db.ApplyListParams(base, filter, equipmentFilterMap)
	base = db.ApplySearch(base, filter.Search, "name", "description")
	if len(filter.Sort) == 0 {
		base = base.OrderBy("name ASC")
	}

	query, args, err := base.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	list, err := collectEquipments(rows)
	if err != nil {
		return nil, 0, err
	}

	countBuilder := sq.Select("COUNT(*)").
		From(equipmentTable).
		PlaceholderFormat(sq.Dollar)
	countFilter := filter
	countFilter.WithPagination = false
	countFilter.Sort = nil
	countBuilder = db.ApplyListParams(countBuilder, countFilter, equipmentFilterMap)
	countBuilder = db.ApplySearch(countBuilder, filter.Search, "name", "description")

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, equipmentFields, equipmentTable)
	return scanEquipment(r.storage.QueryRow(ctx, query, id))
}

// LockEquipment читает запись с блокировкой строки. Используется лентой
// бронирований: проверка доступности и запись слота должны видеть одно и
// то же состояние оборудования.
func (r *EquipmentRepository) LockEquipment(ctx context.Context, tx pgx.Tx, id string) (*entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1 FOR UPDATE`, equipmentFields, equipmentTable)
	return scanEquipment(tx.QueryRow(ctx, query, id))
}

func (r *EquipmentRepository) FindByCategory(ctx context.Context, category string) ([]entities.Equipment, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE category = $1 ORDER BY name`, equipmentFields, equipmentTable)
	rows, err := r.storage.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return collectEquipments(rows)
}

// CreateEquipment — админское добавление. Запись получает свежий локальный
// id из последовательности, а не производный от номеров.
func (r *EquipmentRepository) CreateEquipment(ctx context.Context, d dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	var seq int64
	if err := r.storage.QueryRow(ctx, `SELECT nextval('equipment_local_id_seq')`).Scan(&seq); err != nil {
		return nil, err
	}
	id := fmt.Sprintf("local-%d", seq)

	category := d.Category
	if category == "" {
		category = entities.DefaultCategory
	}
	usageType := d.UsageType
	if usageType == "" {
		usageType = entities.UsageTypeBooking
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, category, location, status, usage_type, image_url,
			brand, model, serial_number, inventory_number, classification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s`, equipmentTable, equipmentFields)

	row := r.storage.QueryRow(ctx, query,
		id, d.Name, d.Description, category, d.Location,
		entities.EquipmentStatusAvailable, usageType, d.ImageURL,
		null.StringFromPtr(d.Brand), null.StringFromPtr(d.Model),
		null.StringFromPtr(d.SerialNumber), null.StringFromPtr(d.InventoryNumber),
		null.StringFromPtr(d.Classification),
	)
	return scanEquipment(row)
}

func (r *EquipmentRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.updateStatus(ctx, r.storage, id, status)
}

func (r *EquipmentRepository) UpdateStatusTx(ctx context.Context, tx pgx.Tx, id string, status string) error {
	return r.updateStatus(ctx, tx, id, status)
}

func (r *EquipmentRepository) updateStatus(ctx context.Context, q Querier, id string, status string) error {
	query := fmt.Sprintf(`UPDATE %s SET status = $1, updated_at = NOW() WHERE id = $2`, equipmentTable)
	result, err := q.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertFromCatalog вставляет запись каталога или обновляет её каталожные
// поля. Локальные status и usage_type при обновлении не трогаются.
// Возвращает true, если строка была вставлена.
func (r *EquipmentRepository) UpsertFromCatalog(ctx context.Context, eq entities.Equipment) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, description, category, location, status, usage_type, image_url,
			brand, model, serial_number, inventory_number, classification)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			location = EXCLUDED.location,
			image_url = EXCLUDED.image_url,
			brand = EXCLUDED.brand,
			model = EXCLUDED.model,
			serial_number = EXCLUDED.serial_number,
			inventory_number = EXCLUDED.inventory_number,
			classification = EXCLUDED.classification,
			updated_at = NOW()
		RETURNING (xmax = 0) AS is_insert`, equipmentTable)

	var isInsert bool
	err := r.storage.QueryRow(ctx, query,
		eq.ID, eq.Name, eq.Description, eq.Category, eq.Location,
		eq.Status, eq.UsageType, eq.ImageURL,
		eq.Brand, eq.Model, eq.SerialNumber, eq.InventoryNumber, eq.Classification,
	).Scan(&isInsert)
	if err != nil {
		return false, err
	}
	return isInsert, nil
}
