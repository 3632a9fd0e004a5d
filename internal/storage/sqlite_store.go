package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MBahyeldin/online-shoping/domain"
)

// credentialRow is the single-row table holding the persisted session. One
// row, fixed primary key: this process stores at most one session.
type credentialRow struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"column:token"`
	UserJSON  string `gorm:"column:user_json"`
	UpdatedAt time.Time
}

func (credentialRow) TableName() string { return "credentials" }

const credentialRowID = 1

// SQLiteStore implements domain.CredentialStore on a local SQLite file. It is
// the default durable local storage for the session token and cached user.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the credential database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open credential store %s: %w", path, err)
	}
	if err := db.AutoMigrate(&credentialRow{}); err != nil {
		return nil, fmt.Errorf("migrate credential store: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Save implements domain.CredentialStore.
func (s *SQLiteStore) Save(ctx context.Context, token string, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	row := credentialRow{ID: credentialRowID, Token: token, UserJSON: string(data)}
	return s.db.WithContext(ctx).Save(&row).Error
}

// Load implements domain.CredentialStore.
func (s *SQLiteStore) Load(ctx context.Context) (string, *domain.User, error) {
	var row credentialRow
	err := s.db.WithContext(ctx).First(&row, credentialRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return "", nil, err
	}
	if row.Token == "" {
		return "", nil, domain.ErrSessionNotFound
	}
	var user domain.User
	if err := json.Unmarshal([]byte(row.UserJSON), &user); err != nil {
		return "", nil, fmt.Errorf("unmarshal cached user: %w", err)
	}
	return row.Token, &user, nil
}

// Clear implements domain.CredentialStore.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&credentialRow{}, credentialRowID).Error
}

var _ domain.CredentialStore = (*SQLiteStore)(nil)
