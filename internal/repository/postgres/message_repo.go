package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Jer-romano/messagely/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (from_username, to_username, body, sent_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	return r.pool.QueryRow(ctx, query,
		msg.FromUsername, msg.ToUsername, msg.Body, msg.SentAt,
	).Scan(&msg.ID)
}

func (r *MessageRepo) GetByID(ctx context.Context, id int64) (*domain.Message, error) {
	query := `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
			f.username, f.first_name, f.last_name, f.phone,
			t.username, t.first_name, t.last_name, t.phone
		FROM messages m
		JOIN users f ON m.from_username = f.username
		JOIN users t ON m.to_username = t.username
		WHERE m.id = $1`

	var msg domain.Message
	var from, to domain.PublicProfile
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.FromUsername, &msg.ToUsername, &msg.Body, &msg.SentAt, &msg.ReadAt,
		&from.Username, &from.FirstName, &from.LastName, &from.Phone,
		&to.Username, &to.FirstName, &to.LastName, &to.Phone,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	msg.FromUser = &from
	msg.ToUser = &to
	return &msg, nil
}

func (r *MessageRepo) MarkRead(ctx context.Context, id int64, at time.Time) error {
	// Guard keeps an existing read stamp from being rewritten.
	_, err := r.pool.Exec(ctx,
		`UPDATE messages SET read_at = $1 WHERE id = $2 AND read_at IS NULL`, at, id)
	return err
}

func (r *MessageRepo) ListFrom(ctx context.Context, username string) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
			t.username, t.first_name, t.last_name, t.phone
		FROM messages m
		JOIN users t ON m.to_username = t.username
		WHERE m.from_username = $1
		ORDER BY m.sent_at`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var to domain.PublicProfile
		if err := rows.Scan(
			&msg.ID, &msg.FromUsername, &msg.ToUsername, &msg.Body, &msg.SentAt, &msg.ReadAt,
			&to.Username, &to.FirstName, &to.LastName, &to.Phone,
		); err != nil {
			return nil, err
		}
		msg.ToUser = &to
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *MessageRepo) ListTo(ctx context.Context, username string) ([]domain.Message, error) {
	query := `
		SELECT m.id, m.from_username, m.to_username, m.body, m.sent_at, m.read_at,
			f.username, f.first_name, f.last_name, f.phone
		FROM messages m
		JOIN users f ON m.from_username = f.username
		WHERE m.to_username = $1
		ORDER BY m.sent_at`

	rows, err := r.pool.Query(ctx, query, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		var from domain.PublicProfile
		if err := rows.Scan(
			&msg.ID, &msg.FromUsername, &msg.ToUsername, &msg.Body, &msg.SentAt, &msg.ReadAt,
			&from.Username, &from.FirstName, &from.LastName, &from.Phone,
		); err != nil {
			return nil, err
		}
		msg.FromUser = &from
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
