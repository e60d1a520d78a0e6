package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StoredEvent is one persisted event row together with the day it belongs to.
type StoredEvent struct {
	Day string
	Event
}

type Repository interface {
	WithTransaction(ctx context.Context, fn func(repo Repository) error) error
	GetEvents(ctx context.Context, identity string) ([]StoredEvent, error)
	GetDayEvents(ctx context.Context, identity string, day string) ([]Event, error)
	StoreEvent(ctx context.Context, identity string, day string, event Event) (uuid.UUID, error)
	DeleteAllEvents(ctx context.Context, identity string) error
}

type RepositoryImpl struct {
	db *sql.DB
	tx *sql.Tx
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db, tx: nil}
}

// getQueryer returns the appropriate database interface for queries (either tx or db)
func (r *RepositoryImpl) getQueryer() interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *RepositoryImpl) WithTransaction(ctx context.Context, fn func(repo Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		// The Rollback is a no-op if the transaction was already committed
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Errorf("rollback error: %v", rbErr)
		}
	}()

	txRepo := &RepositoryImpl{db: r.db, tx: tx}
	if err := fn(txRepo); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *RepositoryImpl) GetEvents(ctx context.Context, identity string) ([]StoredEvent, error) {
	query := `SELECT day, start_minute, end_minute, title, details, color, video_ref
              FROM schedule_event
              WHERE identity = ?
              ORDER BY day, start_minute`

	rows, err := r.getQueryer().QueryContext(ctx, query, identity)
	if err != nil {
		err := fmt.Errorf("could not query schedule events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]StoredEvent, 0, 10)
	for rows.Next() {
		var stored StoredEvent
		err := rows.Scan(&stored.Day, &stored.StartMinute, &stored.EndMinute,
			&stored.Title, &stored.Details, &stored.Color, &stored.VideoRef)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, stored)
	}
	return events, rows.Err()
}

func (r *RepositoryImpl) GetDayEvents(ctx context.Context, identity string, day string) ([]Event, error) {
	query := `SELECT start_minute, end_minute, title, details, color, video_ref
              FROM schedule_event
              WHERE identity = ? AND day = ?
              ORDER BY start_minute`

	rows, err := r.getQueryer().QueryContext(ctx, query, identity, day)
	if err != nil {
		err := fmt.Errorf("could not query schedule events for day: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	events := make([]Event, 0, 4)
	for rows.Next() {
		var event Event
		err := rows.Scan(&event.StartMinute, &event.EndMinute,
			&event.Title, &event.Details, &event.Color, &event.VideoRef)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *RepositoryImpl) StoreEvent(ctx context.Context, identity string, day string, event Event) (uuid.UUID, error) {
	query := `INSERT INTO schedule_event (
                            uid,
                            identity,
                            day,
                            start_minute,
                            end_minute,
                            title,
                            details,
                            color,
                            video_ref
						) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := r.getQueryer().PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return uuid.Nil, err
	}
	defer stmt.Close()

	uid := uuid.New()
	_, err = stmt.ExecContext(ctx, uid.String(), identity, day,
		event.StartMinute, event.EndMinute, event.Title, event.Details, event.Color, event.VideoRef)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return uuid.Nil, err
	}
	return uid, nil
}

func (r *RepositoryImpl) DeleteAllEvents(ctx context.Context, identity string) error {
	query := `DELETE FROM schedule_event WHERE identity = ?`
	stmt, err := r.getQueryer().PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %v", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, identity)
	if err != nil {
		err := fmt.Errorf("could not execute query: %v", err)
		log.Error(err)
		return err
	}
	return nil
}
