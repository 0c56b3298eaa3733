package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

// Store keeps the exhibition catalogue in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the catalogue database at path.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"
	if path == ":memory:" {
		dsn = ":memory:?_foreign_keys=on"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// a single connection keeps ":memory:" databases alive and serialises writers
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS exhibitions (
		id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		date_range TEXT NOT NULL,
		description TEXT NOT NULL,
		image_url TEXT NOT NULL,
		location TEXT NOT NULL,
		category TEXT NOT NULL,
		kind TEXT NOT NULL,
		price_mode TEXT NOT NULL,
		tags TEXT NOT NULL,
		rating REAL NOT NULL DEFAULT 0,
		source_url TEXT NOT NULL,
		bookmarks_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_exhibitions_seq ON exhibitions(seq);

	CREATE TABLE IF NOT EXISTS comments (
		pk INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL,
		exhibition_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		user_avatar TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		text TEXT NOT NULL,
		date TEXT NOT NULL,
		FOREIGN KEY (exhibition_id) REFERENCES exhibitions(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_comments_exhibition ON comments(exhibition_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Seed loads items into an empty catalogue. It is a no-op when records already exist.
func (s *Store) Seed(ctx context.Context, items []domain.Exhibition) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exhibitions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count exhibitions: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	for i, e := range items {
		if err := insertExhibition(ctx, tx, e, i); err != nil {
			return 0, err
		}
		// stored oldest first so that ORDER BY pk DESC yields newest first
		for j := len(e.Comments) - 1; j >= 0; j-- {
			if err := insertComment(ctx, tx, e.ID, e.Comments[j]); err != nil {
				return 0, err
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return len(items), nil
}

// ListExhibitions returns the records matching filter in listing order.
func (s *Store) ListExhibitions(ctx context.Context, filter domain.ExhibitionFilter) ([]domain.Exhibition, error) {
	query := `SELECT id, title, artist, date_range, description, image_url, location, category,
	          kind, price_mode, tags, rating, source_url, bookmarks_count, created_at FROM exhibitions`
	var (
		where []string
		args  []any
	)
	if filter.Kind != "" {
		where = append(where, "kind = ?")
		args = append(args, string(filter.Kind))
	}
	if filter.Category != "" {
		where = append(where, "category = ?")
		args = append(args, filter.Category)
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exhibitions: %w", err)
	}
	defer rows.Close()

	var items []domain.Exhibition
	for rows.Next() {
		e, err := scanExhibition(rows)
		if err != nil {
			return nil, err
		}
		if filter.Match(e) {
			items = append(items, e)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	comments, err := s.loadComments(ctx, s.db, "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Comments = comments[items[i].ID]
		if items[i].Comments == nil {
			items[i].Comments = []domain.Comment{}
		}
	}
	return items, nil
}

// GetExhibition looks up a single record with its comments.
func (s *Store) GetExhibition(ctx context.Context, id string) (domain.Exhibition, error) {
	return s.get(ctx, s.db, id)
}

// CreateExhibition puts a new record at the front of the listing.
func (s *Store) CreateExhibition(ctx context.Context, ex domain.Exhibition) (domain.Exhibition, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Exhibition{}, err
	}
	defer tx.Rollback()

	var front sql.NullInt64
	if err := tx.QueryRowContext(ctx, `SELECT MIN(seq) FROM exhibitions`).Scan(&front); err != nil {
		return domain.Exhibition{}, fmt.Errorf("read listing order: %w", err)
	}
	seq := 0
	if front.Valid {
		seq = int(front.Int64) - 1
	}
	if err := insertExhibition(ctx, tx, ex, seq); err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return domain.Exhibition{}, fmt.Errorf("exhibition %q already exists: %w", ex.ID, domain.ErrInvalidInput)
		}
		return domain.Exhibition{}, err
	}
	created, err := s.get(ctx, tx, ex.ID)
	if err != nil {
		return domain.Exhibition{}, err
	}
	return created, tx.Commit()
}

// AddComment inserts a comment and recomputes the rating in one transaction.
func (s *Store) AddComment(ctx context.Context, id string, c domain.Comment) (domain.Exhibition, error) {
	if c.Rating < 1 || c.Rating > 5 {
		return domain.Exhibition{}, fmt.Errorf("comment %q: %w", c.ID, domain.ErrInvalidRating)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Exhibition{}, err
	}
	defer tx.Rollback()

	if err := exists(ctx, tx, id); err != nil {
		return domain.Exhibition{}, err
	}
	if err := insertComment(ctx, tx, id, c); err != nil {
		return domain.Exhibition{}, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE exhibitions SET rating = (SELECT AVG(rating) FROM comments WHERE exhibition_id = ?) WHERE id = ?`,
		id, id)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("recompute rating: %w", err)
	}
	ex, err := s.get(ctx, tx, id)
	if err != nil {
		return domain.Exhibition{}, err
	}
	return ex, tx.Commit()
}

// AdjustBookmarks changes the bookmark counter by delta, never below zero.
func (s *Store) AdjustBookmarks(ctx context.Context, id string, delta int) (domain.Exhibition, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Exhibition{}, err
	}
	defer tx.Rollback()

	if err := exists(ctx, tx, id); err != nil {
		return domain.Exhibition{}, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE exhibitions SET bookmarks_count = MAX(0, bookmarks_count + ?) WHERE id = ?`, delta, id)
	if err != nil {
		return domain.Exhibition{}, fmt.Errorf("adjust bookmarks: %w", err)
	}
	ex, err := s.get(ctx, tx, id)
	if err != nil {
		return domain.Exhibition{}, err
	}
	return ex, tx.Commit()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) get(ctx context.Context, q querier, id string) (domain.Exhibition, error) {
	row := q.QueryRowContext(ctx, `SELECT id, title, artist, date_range, description, image_url, location,
	          category, kind, price_mode, tags, rating, source_url, bookmarks_count, created_at
	          FROM exhibitions WHERE id = ?`, id)
	ex, err := scanExhibition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Exhibition{}, fmt.Errorf("exhibition %q: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Exhibition{}, err
	}
	comments, err := s.loadComments(ctx, q, id)
	if err != nil {
		return domain.Exhibition{}, err
	}
	ex.Comments = comments[id]
	if ex.Comments == nil {
		ex.Comments = []domain.Comment{}
	}
	return ex, nil
}

func (s *Store) loadComments(ctx context.Context, q querier, exhibitionID string) (map[string][]domain.Comment, error) {
	query := `SELECT exhibition_id, id, user_id, user_name, user_avatar, rating, text, date FROM comments`
	var args []any
	if exhibitionID != "" {
		query += ` WHERE exhibition_id = ?`
		args = append(args, exhibitionID)
	}
	query += ` ORDER BY pk DESC`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.Comment)
	for rows.Next() {
		var (
			exID string
			c    domain.Comment
		)
		if err := rows.Scan(&exID, &c.ID, &c.UserID, &c.UserName, &c.UserAvatar, &c.Rating, &c.Text, &c.Date); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		out[exID] = append(out[exID], c)
	}
	return out, rows.Err()
}

func scanExhibition(row scanner) (domain.Exhibition, error) {
	var (
		e    domain.Exhibition
		kind string
		mode string
		tags string
	)
	err := row.Scan(&e.ID, &e.Title, &e.Artist, &e.DateRange, &e.Description, &e.ImageURL, &e.Location,
		&e.Category, &kind, &mode, &tags, &e.Rating, &e.SourceURL, &e.BookmarksCount, &e.CreatedAt)
	if err != nil {
		return domain.Exhibition{}, err
	}
	e.Kind = domain.Kind(kind)
	e.PriceMode = domain.PriceMode(mode)
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return domain.Exhibition{}, fmt.Errorf("decode tags of %q: %w", e.ID, err)
	}
	return e, nil
}

func exists(ctx context.Context, tx *sql.Tx, id string) error {
	var one int
	err := tx.QueryRowContext(ctx, `SELECT 1 FROM exhibitions WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("exhibition %q: %w", id, domain.ErrNotFound)
	}
	return err
}

func insertExhibition(ctx context.Context, tx *sql.Tx, e domain.Exhibition, seq int) error {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	if e.Tags == nil {
		tags = []byte("[]")
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO exhibitions (id, seq, title, artist, date_range, description,
	          image_url, location, category, kind, price_mode, tags, rating, source_url, bookmarks_count, created_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, seq, e.Title, e.Artist, e.DateRange, e.Description, e.ImageURL, e.Location, e.Category,
		string(e.Kind), string(e.PriceMode), string(tags), e.Rating, e.SourceURL, e.BookmarksCount, createdAt)
	if err != nil {
		return fmt.Errorf("insert exhibition %q: %w", e.ID, err)
	}
	return nil
}

func insertComment(ctx context.Context, tx *sql.Tx, exhibitionID string, c domain.Comment) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO comments (id, exhibition_id, user_id, user_name, user_avatar, rating, text, date)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, exhibitionID, c.UserID, c.UserName, c.UserAvatar, c.Rating, c.Text, c.Date)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}
