package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gig-booking-directory/internal/model"
	apperrors "gig-booking-directory/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fkViolation is the Postgres error code for foreign key violations.
const fkViolation = "23503"

type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) (*model.Venue, error)
	List(ctx context.Context) ([]*model.Venue, error)
	FindByID(ctx context.Context, id int) (*model.Venue, error)
	Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error)
	Delete(ctx context.Context, id int) error
}

type VenueRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewVenueRepository(pool *pgxpool.Pool) VenueRepository {
	return &VenueRepositoryImpl{
		pool: pool,
	}
}

const venueColumns = `id, name, genres, address, city, state, phone, website,
		facebook_link, seeking_talent, seeking_description, image_link,
		created_at, updated_at`

func scanVenue(row pgx.Row, venue *model.Venue) error {
	return row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Genres,
		&venue.Address,
		&venue.City,
		&venue.State,
		&venue.Phone,
		&venue.Website,
		&venue.FacebookLink,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.ImageLink,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
}

func (r *VenueRepositoryImpl) Create(ctx context.Context, venue *model.Venue) (*model.Venue, error) {
	query := `
		INSERT INTO venues (name, genres, address, city, state, phone, website,
			facebook_link, seeking_talent, seeking_description, image_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + venueColumns

	row := r.pool.QueryRow(ctx, query,
		venue.Name, venue.Genres, venue.Address, venue.City, venue.State,
		venue.Phone, venue.Website, venue.FacebookLink, venue.SeekingTalent,
		venue.SeekingDescription, venue.ImageLink,
	)
	if err := scanVenue(row, venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (r *VenueRepositoryImpl) List(ctx context.Context) ([]*model.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*model.Venue, 0)
	for rows.Next() {
		var venue model.Venue
		if err := scanVenue(rows, &venue); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *VenueRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Venue, error) {
	query := `
		SELECT ` + venueColumns + `
		FROM venues
		WHERE id = $1
	`

	var venue model.Venue
	if err := scanVenue(r.pool.QueryRow(ctx, query, id), &venue); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}

	return &venue, nil
}

func (r *VenueRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateVenueParams) (*model.Venue, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Name != nil {
		addSet("name", *params.Name)
	}
	if params.Genres != nil {
		addSet("genres", *params.Genres)
	}
	if params.Address != nil {
		addSet("address", *params.Address)
	}
	if params.City != nil {
		addSet("city", *params.City)
	}
	if params.State != nil {
		addSet("state", *params.State)
	}
	if params.Phone != nil {
		addSet("phone", *params.Phone)
	}
	if params.FacebookLink != nil {
		addSet("facebook_link", *params.FacebookLink)
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE venues
		SET %s
		WHERE id = $%d
		RETURNING `+venueColumns, strings.Join(sets, ", "), argPos)

	var venue model.Venue
	if err := scanVenue(r.pool.QueryRow(ctx, query, args...), &venue); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, err
	}

	return &venue, nil
}

func (r *VenueRepositoryImpl) Delete(ctx context.Context, id int) error {
	query := `
		DELETE FROM venues
		WHERE id = $1
	`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		// shows reference venues with ON DELETE RESTRICT
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return apperrors.ErrVenueHasShows
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrVenueNotFound
	}

	return nil
}
