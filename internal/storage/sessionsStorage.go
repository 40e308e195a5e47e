package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	InsertSession = `INSERT INTO SESSIONS (id, user_id, expires_at)
						VALUES ($1, $2, $3);`
	GetSession            = `SELECT id, user_id, expires_at FROM SESSIONS WHERE id=$1;`
	DeleteSession         = `DELETE FROM SESSIONS WHERE id=$1 RETURNING id;`
	DeleteExpiredSessions = `DELETE FROM SESSIONS WHERE expires_at < $1;`
)

type SessionDatabase struct {
	DB *Database
}

// Создание хранилища
func NewSessionsStorage(db *Database) SessionsStorage {
	return &SessionDatabase{DB: db}
}

func (s *SessionDatabase) AddSession(ctx context.Context, userID string, expiresAt time.Time) (*models.SessionData, error) {
	sessionID := uuid.New().String()
	_, err := s.DB.Pool.Exec(ctx, InsertSession, sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add session: %w", err)
	}
	return &models.SessionData{
		SessionID: sessionID,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionDatabase) GetSession(ctx context.Context, sessionID string) (*models.SessionData, error) {
	var (
		id        string
		userID    string
		expiresAt time.Time
	)
	err := s.DB.Pool.QueryRow(ctx, GetSession, sessionID).Scan(&id, &userID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &models.SessionData{
		SessionID: id,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *SessionDatabase) DeleteSession(ctx context.Context, sessionID string) error {
	var deletedID string
	err := s.DB.Pool.QueryRow(ctx, DeleteSession, sessionID).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpiredSessions - удаление всех сессий, истекших к моменту now
func (s *SessionDatabase) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, DeleteExpiredSessions, now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
