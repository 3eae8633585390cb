package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

//go:embed migrations.sql
var migrations embed.FS

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// PostgresStorage implements Storage against Postgres via lib/pq.
type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewPostgresStorage opens the connection, verifies it, and applies the
// embedded schema.
func NewPostgresStorage(config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}
	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}
	if _, err := s.db.Exec(string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}
	return nil
}

// SaveConversation inserts one conversation record.
func (s *PostgresStorage) SaveConversation(ctx context.Context, conv *Conversation) error {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO conversations (id, user_id, created_at, title, summary, words, intensity_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var intensity sql.NullInt64
	if conv.Intensity != nil {
		intensity = sql.NullInt64{Int64: int64(*conv.Intensity), Valid: true}
	}

	_, err := s.db.ExecContext(ctx, query,
		conv.ID,
		conv.UserID,
		conv.CreatedAt,
		nullString(conv.Title),
		nullString(conv.Summary),
		pq.Array(conv.Words),
		intensity,
	)
	if err != nil {
		return fmt.Errorf("error saving conversation: %w", err)
	}
	return nil
}

// RecentConversations returns up to limit records, newest first.
func (s *PostgresStorage) RecentConversations(ctx context.Context, userID string, limit int) ([]Conversation, error) {
	query := `
		SELECT id, user_id, created_at, title, summary, words, intensity_score
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing conversations: %w", err)
	}
	defer rows.Close()

	var records []Conversation
	for rows.Next() {
		var (
			conv      Conversation
			title     sql.NullString
			summary   sql.NullString
			intensity sql.NullInt64
		)
		if err := rows.Scan(&conv.ID, &conv.UserID, &conv.CreatedAt,
			&title, &summary, pq.Array(&conv.Words), &intensity); err != nil {
			return nil, fmt.Errorf("error scanning conversation: %w", err)
		}
		conv.Title = title.String
		conv.Summary = summary.String
		if intensity.Valid {
			value := int(intensity.Int64)
			conv.Intensity = &value
		}
		records = append(records, conv)
	}
	return records, rows.Err()
}

// IncrementThemes upserts and bumps each theme label.
func (s *PostgresStorage) IncrementThemes(ctx context.Context, userID string, labels []string) error {
	query := `
		INSERT INTO themes (user_id, label, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, label) DO UPDATE SET count = themes.count + 1`

	for _, label := range labels {
		if _, err := s.db.ExecContext(ctx, query, userID, label); err != nil {
			return fmt.Errorf("error incrementing theme %q: %w", label, err)
		}
	}
	return nil
}

// TopThemes returns up to limit themes ordered by descending count.
func (s *PostgresStorage) TopThemes(ctx context.Context, userID string, limit int) ([]ThemeCount, error) {
	query := `
		SELECT label, count FROM themes
		WHERE user_id = $1
		ORDER BY count DESC, label ASC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing themes: %w", err)
	}
	defer rows.Close()

	var counts []ThemeCount
	for rows.Next() {
		var tc ThemeCount
		if err := rows.Scan(&tc.Label, &tc.Count); err != nil {
			return nil, fmt.Errorf("error scanning theme: %w", err)
		}
		counts = append(counts, tc)
	}
	return counts, rows.Err()
}

// GetPreferences returns the preference record or ErrNotFound.
func (s *PostgresStorage) GetPreferences(ctx context.Context, userID string) (Preferences, error) {
	query := `SELECT user_id, background_colour, avatar_url FROM preferences WHERE user_id = $1`

	var (
		prefs  Preferences
		colour sql.NullString
		avatar sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&prefs.UserID, &colour, &avatar)
	if err == sql.ErrNoRows {
		return Preferences{}, ErrNotFound
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("error loading preferences: %w", err)
	}
	prefs.BackgroundColour = colour.String
	prefs.AvatarURL = avatar.String
	return prefs, nil
}

// SaveThemePreference upserts the background colour preference.
func (s *PostgresStorage) SaveThemePreference(ctx context.Context, userID, themeName string) error {
	query := `
		INSERT INTO preferences (user_id, background_colour)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET background_colour = EXCLUDED.background_colour`

	if _, err := s.db.ExecContext(ctx, query, userID, themeName); err != nil {
		return fmt.Errorf("error saving theme preference: %w", err)
	}
	return nil
}

// SaveAvatar upserts the avatar URL preference.
func (s *PostgresStorage) SaveAvatar(ctx context.Context, userID, avatarURL string) error {
	query := `
		INSERT INTO preferences (user_id, avatar_url)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET avatar_url = EXCLUDED.avatar_url`

	if _, err := s.db.ExecContext(ctx, query, userID, avatarURL); err != nil {
		return fmt.Errorf("error saving avatar: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *PostgresStorage) Close() error { return s.db.Close() }

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
