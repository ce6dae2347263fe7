package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wcmap/toilet-map/internal/models"
	"github.com/wcmap/toilet-map/internal/service"
)

const toiletColumns = `
	id,
	name,
	latitude,
	longitude,
	description,
	is_accessible,
	is_free,
	has_baby_changing,
	is_approved,
	submitted_by,
	created_at`

// ToiletRepository - реляционная реализация хранилища записей
type ToiletRepository struct {
	db *pgxpool.Pool
}

func NewToiletRepository(db *pgxpool.Pool) service.ToiletRepository {
	return &ToiletRepository{
		db: db,
	}
}

// Create сохраняет новую запись и заполняет серверные поля id и created_at
func (r *ToiletRepository) Create(ctx context.Context, toilet *models.Toilet) error {
	query := `
		INSERT INTO toilets (name, latitude, longitude, description, is_accessible, is_free, has_baby_changing, is_approved, submitted_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		toilet.Name,
		toilet.Latitude,
		toilet.Longitude,
		toilet.Description,
		toilet.IsAccessible,
		toilet.IsFree,
		toilet.HasBabyChanging,
		toilet.IsApproved,
		toilet.SubmittedBy,
	).Scan(&toilet.ID, &toilet.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create toilet: %w", err)
	}
	return nil
}

// GetByID возвращает запись по её UUID
func (r *ToiletRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Toilet, error) {
	toilet := &models.Toilet{}
	query := fmt.Sprintf(`SELECT %s FROM toilets WHERE id = $1;`, toiletColumns)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&toilet.ID,
		&toilet.Name,
		&toilet.Latitude,
		&toilet.Longitude,
		&toilet.Description,
		&toilet.IsAccessible,
		&toilet.IsFree,
		&toilet.HasBabyChanging,
		&toilet.IsApproved,
		&toilet.SubmittedBy,
		&toilet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrToiletNotFound
		}
		return nil, fmt.Errorf("failed to get toilet by id: %w", err)
	}
	return toilet, nil
}

// List возвращает записи в порядке создания, новые первыми.
// Реляционный бэкенд умеет фильтровать по одобрению на стороне сервера.
func (r *ToiletRepository) List(ctx context.Context, onlyApproved bool) ([]*models.Toilet, error) {
	query := fmt.Sprintf(`SELECT %s FROM toilets`, toiletColumns)
	if onlyApproved {
		query += ` WHERE is_approved = TRUE`
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list toilets: %w", err)
	}
	defer rows.Close()

	toilets := make([]*models.Toilet, 0)
	for rows.Next() {
		toilet := &models.Toilet{}
		err := rows.Scan(
			&toilet.ID,
			&toilet.Name,
			&toilet.Latitude,
			&toilet.Longitude,
			&toilet.Description,
			&toilet.IsAccessible,
			&toilet.IsFree,
			&toilet.HasBabyChanging,
			&toilet.IsApproved,
			&toilet.SubmittedBy,
			&toilet.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan toilet row: %w", err)
		}
		toilets = append(toilets, toilet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return toilets, nil
}

// Update применяет частичное обновление и возвращает обновленную запись
func (r *ToiletRepository) Update(ctx context.Context, id uuid.UUID, update models.ToiletUpdate) (*models.Toilet, error) {
	query, args, err := buildUpdateQuery(id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	toilet := &models.Toilet{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&toilet.ID,
		&toilet.Name,
		&toilet.Latitude,
		&toilet.Longitude,
		&toilet.Description,
		&toilet.IsAccessible,
		&toilet.IsFree,
		&toilet.HasBabyChanging,
		&toilet.IsApproved,
		&toilet.SubmittedBy,
		&toilet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrToiletNotFound
		}
		return nil, fmt.Errorf("failed to update toilet: %w", err)
	}
	return toilet, nil
}

// Delete безвозвратно удаляет запись
func (r *ToiletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM toilets WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete toilet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrToiletNotFound
	}
	return nil
}

// buildUpdateQuery собирает UPDATE только из заданных полей.
// SET-часть динамическая, поэтому используем squirrel вместо статического SQL.
func buildUpdateQuery(id uuid.UUID, update models.ToiletUpdate) (string, []interface{}, error) {
	b := sq.Update("toilets").PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Latitude != nil {
		b = b.Set("latitude", *update.Latitude)
	}
	if update.Longitude != nil {
		b = b.Set("longitude", *update.Longitude)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.IsAccessible != nil {
		b = b.Set("is_accessible", *update.IsAccessible)
	}
	if update.IsFree != nil {
		b = b.Set("is_free", *update.IsFree)
	}
	if update.HasBabyChanging != nil {
		b = b.Set("has_baby_changing", *update.HasBabyChanging)
	}
	if update.IsApproved != nil {
		b = b.Set("is_approved", *update.IsApproved)
	}

	return b.Where(sq.Eq{"id": id}).
		Suffix("RETURNING" + toiletColumns).
		ToSql()
}
