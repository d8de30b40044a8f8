package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gig-booking-directory/internal/model"
	apperrors "gig-booking-directory/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArtistRepository interface {
	Create(ctx context.Context, artist *model.Artist) (*model.Artist, error)
	List(ctx context.Context) ([]*model.Artist, error)
	FindByID(ctx context.Context, id int) (*model.Artist, error)
	Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error)
}

type ArtistRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewArtistRepository(pool *pgxpool.Pool) ArtistRepository {
	return &ArtistRepositoryImpl{
		pool: pool,
	}
}

const artistColumns = `id, name, genres, city, state, phone, website,
		facebook_link, seeking_venue, seeking_description, image_link,
		created_at, updated_at`

func scanArtist(row pgx.Row, artist *model.Artist) error {
	return row.Scan(
		&artist.ID,
		&artist.Name,
		&artist.Genres,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Website,
		&artist.FacebookLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.ImageLink,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)
}

func (r *ArtistRepositoryImpl) Create(ctx context.Context, artist *model.Artist) (*model.Artist, error) {
	query := `
		INSERT INTO artists (name, genres, city, state, phone, website,
			facebook_link, seeking_venue, seeking_description, image_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + artistColumns

	row := r.pool.QueryRow(ctx, query,
		artist.Name, artist.Genres, artist.City, artist.State, artist.Phone,
		artist.Website, artist.FacebookLink, artist.SeekingVenue,
		artist.SeekingDescription, artist.ImageLink,
	)
	if err := scanArtist(row, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

func (r *ArtistRepositoryImpl) List(ctx context.Context) ([]*model.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		ORDER BY id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := make([]*model.Artist, 0)
	for rows.Next() {
		var artist model.Artist
		if err := scanArtist(rows, &artist); err != nil {
			return nil, err
		}
		artists = append(artists, &artist)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Artist, error) {
	query := `
		SELECT ` + artistColumns + `
		FROM artists
		WHERE id = $1
	`

	var artist model.Artist
	if err := scanArtist(r.pool.QueryRow(ctx, query, id), &artist); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}

	return &artist, nil
}

func (r *ArtistRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateArtistParams) (*model.Artist, error) {
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
		UPDATE artists
		SET %s
		WHERE id = $%d
		RETURNING `+artistColumns, strings.Join(sets, ", "), argPos)

	var artist model.Artist
	if err := scanArtist(r.pool.QueryRow(ctx, query, args...), &artist); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrArtistNotFound
		}
		return nil, err
	}

	return &artist, nil
}
