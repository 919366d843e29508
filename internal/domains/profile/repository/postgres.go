package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"litshelf-backend/internal/domains/profile/model"
)

const uniqueViolationCode = "23505"

type postgresProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &postgresProfileRepository{pool: pool}
}

func (r *postgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return r.getProfile(ctx, `WHERE user_id = $1`, userID)
}

func (r *postgresProfileRepository) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
	return r.getProfile(ctx, `WHERE username = $1`, username)
}

func (r *postgresProfileRepository) getProfile(ctx context.Context, where string, arg interface{}) (*model.Profile, error) {
	var profile model.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, username, bio, favorite_genres, favorite_book, avatar_choice, created_at
		FROM profiles `+where,
		arg,
	).Scan(
		&profile.UserID, &profile.Username, &profile.Bio, pq.Array(&profile.FavoriteGenres),
		&profile.FavoriteBook, &profile.AvatarChoice, &profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

func (r *postgresProfileRepository) Update(ctx context.Context, userID uuid.UUID, req model.UpdateProfileRequest) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET bio = $2, favorite_genres = $3, favorite_book = $4, avatar_choice = $5
		WHERE user_id = $1`,
		userID, req.Bio, pq.Array(req.FavoriteGenres), req.FavoriteBook, req.AvatarChoice,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProfileNotFound
	}
	return nil
}

func (r *postgresProfileRepository) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, NOW())`,
		followerID, followedID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.ErrDuplicateFollow
		}
		return fmt.Errorf("insert follow edge: %w", err)
	}
	return nil
}

func (r *postgresProfileRepository) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`,
		followerID, followedID,
	)
	if err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFollowing
	}
	return nil
}

func (r *postgresProfileRepository) Counts(ctx context.Context, userID uuid.UUID) (*model.FollowCounts, error) {
	var counts model.FollowCounts
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM follows WHERE followed_id = $1),
			(SELECT COUNT(*) FROM follows WHERE follower_id = $1)`,
		userID,
	).Scan(&counts.Followers, &counts.Following)
	if err != nil {
		return nil, fmt.Errorf("count follow edges: %w", err)
	}
	return &counts, nil
}

func (r *postgresProfileRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error) {
	return r.listEdges(ctx, `
		SELECT p.user_id, p.username, p.avatar_choice
		FROM follows f
		JOIN profiles p ON p.user_id = f.follower_id
		WHERE f.followed_id = $1
		ORDER BY f.created_at DESC`,
		userID,
	)
}

func (r *postgresProfileRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]model.FollowEntry, error) {
	return r.listEdges(ctx, `
		SELECT p.user_id, p.username, p.avatar_choice
		FROM follows f
		JOIN profiles p ON p.user_id = f.followed_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC`,
		userID,
	)
}

func (r *postgresProfileRepository) listEdges(ctx context.Context, query string, userID uuid.UUID) ([]model.FollowEntry, error) {
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list follow edges: %w", err)
	}
	defer rows.Close()

	entries := []model.FollowEntry{}
	for rows.Next() {
		var e model.FollowEntry
		if err := rows.Scan(&e.UserID, &e.Username, &e.AvatarChoice); err != nil {
			return nil, fmt.Errorf("scan follow edge: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate follow edges: %w", err)
	}
	return entries, nil
}
