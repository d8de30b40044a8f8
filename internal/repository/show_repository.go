package repository

import (
	"context"
	"errors"

	"gig-booking-directory/internal/model"
	apperrors "gig-booking-directory/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ShowRepository interface {
	Create(ctx context.Context, show *model.Show) (*model.Show, error)
	List(ctx context.Context) ([]*model.Show, error)
	ListByVenueID(ctx context.Context, venueID int) ([]*model.Show, error)
	ListByArtistID(ctx context.Context, artistID int) ([]*model.Show, error)
}

type ShowRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewShowRepository(pool *pgxpool.Pool) ShowRepository {
	return &ShowRepositoryImpl{
		pool: pool,
	}
}

func scanShow(row pgx.Row, show *model.Show) error {
	return row.Scan(
		&show.ID,
		&show.VenueID,
		&show.ArtistID,
		&show.StartTime,
		&show.CreatedAt,
	)
}

func (r *ShowRepositoryImpl) Create(ctx context.Context, show *model.Show) (*model.Show, error) {
	query := `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id, venue_id, artist_id, start_time, created_at
	`

	row := r.pool.QueryRow(ctx, query, show.VenueID, show.ArtistID, show.StartTime)
	if err := scanShow(row, show); err != nil {
		// the foreign keys are the last line of defense against booking a
		// show onto a venue or artist that no longer exists
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return nil, apperrors.ErrDanglingReference
		}
		return nil, err
	}
	return show, nil
}

func (r *ShowRepositoryImpl) List(ctx context.Context) ([]*model.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, start_time, created_at
		FROM shows
		ORDER BY id
	`
	return r.queryShows(ctx, query)
}

func (r *ShowRepositoryImpl) ListByVenueID(ctx context.Context, venueID int) ([]*model.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, start_time, created_at
		FROM shows
		WHERE venue_id = $1
		ORDER BY id
	`
	return r.queryShows(ctx, query, venueID)
}

func (r *ShowRepositoryImpl) ListByArtistID(ctx context.Context, artistID int) ([]*model.Show, error) {
	query := `
		SELECT id, venue_id, artist_id, start_time, created_at
		FROM shows
		WHERE artist_id = $1
		ORDER BY id
	`
	return r.queryShows(ctx, query, artistID)
}

func (r *ShowRepositoryImpl) queryShows(ctx context.Context, query string, args ...interface{}) ([]*model.Show, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shows := make([]*model.Show, 0)
	for rows.Next() {
		var show model.Show
		if err := scanShow(rows, &show); err != nil {
			return nil, err
		}
		shows = append(shows, &show)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shows, nil
}
