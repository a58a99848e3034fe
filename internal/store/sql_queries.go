package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, access_token)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password_hash, access_token, task_id, created_at;`

	findUserByUsername = `SELECT user_id, username, email, password_hash, access_token, task_id, created_at
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT user_id, username, email, password_hash, access_token, task_id, created_at
    FROM users
    WHERE access_token = $1;`
)

// buildFindTasksByUserQuery builds the task listing query for one user,
// ordered newest first.
func buildFindTasksByUserQuery(userID int64) (string, []any, error) {
	return sq.
		Select("task_id", "user_id", "description", "created_at").
		From("tasks").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
