package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, owner_user_id, adopter_user_id,
	name, age, weight, color,
	images, available,
	created_at, updated_at`

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		p.ID,
		p.OwnerUserID,
		toNullString(p.AdopterUserID),
		p.Name,
		p.Age,
		p.Weight,
		p.Color,
		images,
		p.Available,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapWriteErr(err)
}

// Update no toca owner_user_id ni created_at.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	images, err := encodeImages(p.Images)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			adopter_user_id = $2,
			name = $3,
			age = $4,
			weight = $5,
			color = $6,
			images = $7,
			available = $8,
			updated_at = $9
		WHERE id = $1
	`,
		p.ID,
		toNullString(p.AdopterUserID),
		p.Name,
		p.Age,
		p.Weight,
		p.Color,
		images,
		p.Available,
		p.UpdatedAt,
	)
	if err != nil {
		return mapWriteErr(err)
	}
	return rowsAffectedOrNotFound(res)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(res)
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.list(ctx, `SELECT `+petColumns+` FROM pets ORDER BY created_at DESC`)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}
	return r.list(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, ownerUserID)
}

func (r *PetsRepo) ListByAdopter(ctx context.Context, adopterUserID string) ([]pets.Pet, error) {
	adopterUserID = strings.TrimSpace(adopterUserID)
	if adopterUserID == "" {
		return []pets.Pet{}, nil
	}
	return r.list(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE adopter_user_id = $1
		ORDER BY created_at DESC
	`, adopterUserID)
}

func (r *PetsRepo) list(ctx context.Context, query string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var adopter sql.NullString
	var images []byte

	if err := s.Scan(
		&p.ID,
		&p.OwnerUserID,
		&adopter,
		&p.Name,
		&p.Age,
		&p.Weight,
		&p.Color,
		&images,
		&p.Available,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.AdopterUserID = adopter.String
	p.Images = []string{}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return pets.Pet{}, fmt.Errorf("decode images of pet %s: %w", p.ID, err)
		}
	}
	return p, nil
}

// images es JSONB; se manda como texto para que pgx no lo trate como bytea.
func encodeImages(in []string) (string, error) {
	if in == nil {
		in = []string{}
	}
	b, err := json.Marshal(in)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func toNullString(s string) sql.NullString {
	if strings.TrimSpace(s) == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
