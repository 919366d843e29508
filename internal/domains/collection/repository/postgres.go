package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"litshelf-backend/internal/domains/collection/model"
	"litshelf-backend/pkg/database"
)

type postgresCollectionRepository struct {
	pool    *pgxpool.Pool
	dialect goqu.DialectWrapper
}

func NewPostgresCollectionRepository(pool *pgxpool.Pool) CollectionRepository {
	return &postgresCollectionRepository{
		pool:    pool,
		dialect: goqu.Dialect("postgres"),
	}
}

func (r *postgresCollectionRepository) Create(ctx context.Context, collection *model.Collection) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO collections (id, user_id, name, icon_id, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		collection.ID,
		collection.UserID,
		collection.Name,
		collection.IconID,
		collection.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

func (r *postgresCollectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Collection, error) {
	collection := &model.Collection{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, icon_id, created_at FROM collections WHERE id = $1`, id,
	).Scan(
		&collection.ID,
		&collection.UserID,
		&collection.Name,
		&collection.IconID,
		&collection.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("get collection: %w", err)
	}

	return collection, nil
}

func (r *postgresCollectionRepository) GetIDByName(ctx context.Context, userID uuid.UUID, name string) (uuid.UUID, bool, error) {
	var id uuid.UUID

	err := r.pool.QueryRow(ctx,
		`SELECT id FROM collections WHERE user_id = $1 AND lower(name) = lower($2)`,
		userID, name,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, fmt.Errorf("find collection by name: %w", err)
	}

	return id, true, nil
}

func (r *postgresCollectionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Collection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, icon_id, created_at
		 FROM collections
		 WHERE user_id = $1
		 ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	collections := []*model.Collection{}
	for rows.Next() {
		c := &model.Collection{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.IconID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, c)
	}

	return collections, rows.Err()
}

func (r *postgresCollectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM collection_books WHERE collection_id = $1`, id); err != nil {
			return fmt.Errorf("delete collection entries: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete collection: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrCollectionNotFound
		}
		return nil
	})
}

// ListEntries sorts by position ascending. Legacy zero positions sort first
// and are repaired by the next mutation, so reads never block on bad data.
func (r *postgresCollectionRepository) ListEntries(ctx context.Context, collectionID uuid.UUID) ([]model.EntryWithBook, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT b.id, b.title, b.authors, b.isbn, b.first_publish_year, b.cover_url,
		        COALESCE(cb.position, 0)
		 FROM collection_books cb
		 JOIN books b ON b.id = cb.book_id
		 WHERE cb.collection_id = $1
		 ORDER BY COALESCE(cb.position, 0) ASC, cb.added_at ASC`, collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list collection entries: %w", err)
	}
	defer rows.Close()

	entries := []model.EntryWithBook{}
	for rows.Next() {
		var e model.EntryWithBook
		var authors []string
		if err := rows.Scan(
			&e.BookID, &e.Title, pq.Array(&authors), &e.ISBN,
			&e.FirstPublishYear, &e.CoverURL, &e.Position,
		); err != nil {
			return nil, fmt.Errorf("scan collection entry: %w", err)
		}
		e.Authors = authors
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// lockEntries loads and row-locks a collection's entries, sorted by
// position. All multi-row position writes go through this so concurrent
// reorders serialize per collection.
func lockEntries(ctx context.Context, tx pgx.Tx, collectionID uuid.UUID) ([]model.Entry, error) {
	rows, err := tx.Query(ctx,
		`SELECT collection_id, book_id, COALESCE(position, 0), added_at
		 FROM collection_books
		 WHERE collection_id = $1
		 FOR UPDATE`, collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("lock collection entries: %w", err)
	}
	defer rows.Close()

	entries := []model.Entry{}
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.CollectionID, &e.BookID, &e.Position, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scan locked entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	model.SortByPosition(entries)
	return entries, nil
}

func applyPositionUpdates(ctx context.Context, tx pgx.Tx, collectionID uuid.UUID, updates []model.PositionUpdate) error {
	for _, u := range updates {
		if _, err := tx.Exec(ctx,
			`UPDATE collection_books SET position = $3
			 WHERE collection_id = $1 AND book_id = $2`,
			collectionID, u.BookID, u.Position,
		); err != nil {
			return fmt.Errorf("update entry position: %w", err)
		}
	}
	return nil
}

func (r *postgresCollectionRepository) AddEntry(ctx context.Context, collectionID, bookID uuid.UUID) (int, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int, error) {
		entries, err := lockEntries(ctx, tx, collectionID)
		if err != nil {
			return 0, err
		}

		for _, e := range entries {
			if e.BookID == bookID {
				return 0, model.ErrDuplicateEntry
			}
		}

		// Adding to an unrepaired collection first renumbers it so the
		// appended position really is N+1.
		if err := applyPositionUpdates(ctx, tx, collectionID, model.Renumber(entries)); err != nil {
			return 0, err
		}

		position := len(entries) + 1
		_, err = tx.Exec(ctx,
			`INSERT INTO collection_books (collection_id, book_id, position, added_at)
			 VALUES ($1, $2, $3, $4)`,
			collectionID, bookID, position, time.Now(),
		)
		if err != nil {
			return 0, fmt.Errorf("add collection entry: %w", err)
		}

		return position, nil
	})
}

func (r *postgresCollectionRepository) RemoveEntry(ctx context.Context, collectionID, bookID uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		entries, err := lockEntries(ctx, tx, collectionID)
		if err != nil {
			return err
		}

		remaining := make([]model.Entry, 0, len(entries))
		found := false
		for _, e := range entries {
			if e.BookID == bookID {
				found = true
				continue
			}
			remaining = append(remaining, e)
		}
		if !found {
			return model.ErrEntryNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM collection_books WHERE collection_id = $1 AND book_id = $2`,
			collectionID, bookID,
		); err != nil {
			return fmt.Errorf("remove collection entry: %w", err)
		}

		// Restore the dense 1..N invariant.
		return applyPositionUpdates(ctx, tx, collectionID, model.Renumber(remaining))
	})
}

func (r *postgresCollectionRepository) MoveEntry(ctx context.Context, collectionID, bookID uuid.UUID, direction model.MoveDirection) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		entries, err := lockEntries(ctx, tx, collectionID)
		if err != nil {
			return err
		}

		// Repair legacy zero/gapped numbering first; a swap of two equal
		// positions would otherwise report success without moving anything.
		repairs := model.Renumber(entries)
		if err := applyPositionUpdates(ctx, tx, collectionID, repairs); err != nil {
			return err
		}
		for _, u := range repairs {
			for i := range entries {
				if entries[i].BookID == u.BookID {
					entries[i].Position = u.Position
				}
			}
		}

		a, b, ok := model.AdjacentSwap(entries, bookID, direction)
		if !ok {
			// Boundary move or unknown book: boundary is a silent no-op,
			// unknown book is an error.
			for _, e := range entries {
				if e.BookID == bookID {
					return nil
				}
			}
			return model.ErrEntryNotFound
		}

		return applyPositionUpdates(ctx, tx, collectionID, []model.PositionUpdate{a, b})
	})
}

// Search builds the dynamic filter query with goqu and executes it on pgx.
func (r *postgresCollectionRepository) Search(ctx context.Context, search string, byUser bool, start, end *time.Time) ([]model.CollectionSearchResult, error) {
	pattern := "%" + search + "%"

	ds := r.dialect.
		From(goqu.T("collections").As("c")).
		Join(goqu.T("profiles").As("p"), goqu.On(goqu.I("c.user_id").Eq(goqu.I("p.user_id")))).
		Select(
			goqu.I("c.id"), goqu.I("c.name"), goqu.I("c.icon_id"),
			goqu.I("c.created_at"), goqu.I("p.username"),
		)

	if byUser {
		ds = ds.Where(goqu.I("p.username").ILike(pattern))
	} else {
		ds = ds.Where(goqu.I("c.name").ILike(pattern))
	}
	if start != nil {
		ds = ds.Where(goqu.L("c.created_at::date >= ?", *start))
	}
	if end != nil {
		ds = ds.Where(goqu.L("c.created_at::date <= ?", *end))
	}

	sql, args, err := ds.Order(goqu.I("c.created_at").Desc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build collection search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("search collections: %w", err)
	}
	defer rows.Close()

	results := []model.CollectionSearchResult{}
	for rows.Next() {
		var res model.CollectionSearchResult
		if err := rows.Scan(&res.ID, &res.Name, &res.IconID, &res.CreatedAt, &res.Username); err != nil {
			return nil, fmt.Errorf("scan collection search hit: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		previews, err := r.listPreviews(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Books = previews
	}

	return results, nil
}

func (r *postgresCollectionRepository) listPreviews(ctx context.Context, collectionID uuid.UUID) ([]model.BookPreview, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT b.title, b.cover_url
		 FROM collection_books cb
		 JOIN books b ON b.id = cb.book_id
		 WHERE cb.collection_id = $1
		 ORDER BY COALESCE(cb.position, 0) ASC
		 LIMIT 6`, collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("list preview books: %w", err)
	}
	defer rows.Close()

	previews := []model.BookPreview{}
	for rows.Next() {
		var p model.BookPreview
		if err := rows.Scan(&p.Title, &p.CoverURL); err != nil {
			return nil, fmt.Errorf("scan preview book: %w", err)
		}
		previews = append(previews, p)
	}

	return previews, rows.Err()
}
