package themekit

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = sql.ErrNoRows

// PostRecord is a stored content entry: the resolver-facing Post fields plus
// the editorial fields the engine stores and the views render.
type PostRecord struct {
	Post
	Title     string
	Content   string
	MimeType  string // set for attachments
	Date      string // YYYY-MM-DD
	Published bool
}

// Record converts an attachment row back to its resolver-facing variant.
func (p PostRecord) attachment() Attachment {
	return Attachment{Post: p.Post, MimeType: p.MimeType}
}

// Store wraps a SQLite database holding the posts, terms, and users the
// classifier resolves queried objects from.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent read/write access, busy timeout so writers wait
	// instead of returning SQLITE_BUSY, synchronous=NORMAL is safe with WAL.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
		PRAGMA cache_size=-8000;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS posts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    type TEXT NOT NULL DEFAULT 'post',
    name TEXT NOT NULL,
    title TEXT NOT NULL DEFAULT '',
    content TEXT NOT NULL DEFAULT '',
    format TEXT NOT NULL DEFAULT '',
    template TEXT NOT NULL DEFAULT '',
    mime_type TEXT NOT NULL DEFAULT '',
    date TEXT NOT NULL DEFAULT '',
    published INTEGER NOT NULL DEFAULT 1,
    UNIQUE(type, name)
);
CREATE TABLE IF NOT EXISTS terms (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    taxonomy TEXT NOT NULL,
    slug TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    UNIQUE(taxonomy, slug)
);
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nicename TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

const postColumns = `id, type, name, title, content, format, template, mime_type, date, published`

func scanPost(row interface{ Scan(...any) error }) (PostRecord, error) {
	var p PostRecord
	var published int
	err := row.Scan(&p.ID, &p.Type, &p.Name, &p.Title, &p.Content,
		&p.Format, &p.Template, &p.MimeType, &p.Date, &published)
	if err != nil {
		return PostRecord{}, err
	}
	p.Published = published == 1
	return p, nil
}

// SavePost inserts or updates a post keyed by (type, name) and returns its id.
func (s *Store) SavePost(p PostRecord) (int64, error) {
	published := 0
	if p.Published {
		published = 1
	}
	_, err := s.db.Exec(`
INSERT INTO posts (type, name, title, content, format, template, mime_type, date, published)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(type, name) DO UPDATE SET
    title=excluded.title, content=excluded.content, format=excluded.format,
    template=excluded.template, mime_type=excluded.mime_type,
    date=excluded.date, published=excluded.published`,
		p.Type, p.Name, p.Title, p.Content, p.Format, p.Template, p.MimeType, p.Date, published)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.db.QueryRow(`SELECT id FROM posts WHERE type = ? AND name = ?`, p.Type, p.Name).Scan(&id)
	return id, err
}

// GetPost returns a published post by type and name.
func (s *Store) GetPost(postType, name string) (PostRecord, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE type = ? AND name = ? AND published = 1`, postType, name)
	return scanPost(row)
}

// GetPostAny returns a post by type and name regardless of published state.
func (s *Store) GetPostAny(postType, name string) (PostRecord, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE type = ? AND name = ?`, postType, name)
	return scanPost(row)
}

// ListPosts returns published posts, newest first. An empty postType lists
// every type.
func (s *Store) ListPosts(postType string) ([]PostRecord, error) {
	var rows *sql.Rows
	var err error
	if postType == "" {
		rows, err = s.db.Query(`SELECT ` + postColumns + ` FROM posts WHERE published = 1 ORDER BY date DESC, id DESC`)
	} else {
		rows, err = s.db.Query(`SELECT `+postColumns+` FROM posts WHERE type = ? AND published = 1 ORDER BY date DESC, id DESC`, postType)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []PostRecord
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// DeletePost removes a post by type and name.
func (s *Store) DeletePost(postType, name string) error {
	_, err := s.db.Exec(`DELETE FROM posts WHERE type = ? AND name = ?`, postType, name)
	return err
}

// SaveTerm inserts or updates a term keyed by (taxonomy, slug) and returns its id.
func (s *Store) SaveTerm(t Term, displayName string) (int64, error) {
	_, err := s.db.Exec(`
INSERT INTO terms (taxonomy, slug, name) VALUES (?, ?, ?)
ON CONFLICT(taxonomy, slug) DO UPDATE SET name=excluded.name`,
		t.Taxonomy, t.Slug, displayName)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.db.QueryRow(`SELECT id FROM terms WHERE taxonomy = ? AND slug = ?`, t.Taxonomy, t.Slug).Scan(&id)
	return id, err
}

// GetTerm returns a term by taxonomy and slug.
func (s *Store) GetTerm(taxonomy, slug string) (Term, error) {
	var t Term
	err := s.db.QueryRow(`SELECT id, taxonomy, slug FROM terms WHERE taxonomy = ? AND slug = ?`,
		taxonomy, slug).Scan(&t.ID, &t.Taxonomy, &t.Slug)
	return t, err
}

// ListTerms returns every term, ordered by taxonomy then slug.
func (s *Store) ListTerms() ([]Term, error) {
	rows, err := s.db.Query(`SELECT id, taxonomy, slug FROM terms ORDER BY taxonomy, slug`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []Term
	for rows.Next() {
		var t Term
		if err := rows.Scan(&t.ID, &t.Taxonomy, &t.Slug); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// SaveUser inserts or updates a user keyed by nicename and returns their id.
func (s *Store) SaveUser(u User, displayName string) (int64, error) {
	_, err := s.db.Exec(`
INSERT INTO users (nicename, display_name) VALUES (?, ?)
ON CONFLICT(nicename) DO UPDATE SET display_name=excluded.display_name`,
		u.Nicename, displayName)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.db.QueryRow(`SELECT id FROM users WHERE nicename = ?`, u.Nicename).Scan(&id)
	return id, err
}

// GetUser returns a user by nicename.
func (s *Store) GetUser(nicename string) (User, error) {
	var u User
	err := s.db.QueryRow(`SELECT id, nicename FROM users WHERE nicename = ?`, nicename).Scan(&u.ID, &u.Nicename)
	return u, err
}

// ListUsers returns every user, ordered by nicename.
func (s *Store) ListUsers() ([]User, error) {
	rows, err := s.db.Query(`SELECT id, nicename FROM users ORDER BY nicename`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Nicename); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
