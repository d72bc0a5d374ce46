package store

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
)

// Postgres implements TodoStore and UserStore on a database/sql connection.
type Postgres struct {
	DB *sql.DB
}

// NewPostgres wraps an open database connection.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{DB: db}
}

func (p *Postgres) List() ([]models.Todo, error) {
	rows, err := p.DB.Query("SELECT id, text, is_completed FROM todos ORDER BY id ASC")
	if err != nil {
		return nil, errors.Wrap(err, "query todos")
	}
	defer rows.Close()

	var todos []models.Todo
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.Text, &t.IsCompleted); err != nil {
			return nil, errors.Wrap(err, "scan todo row")
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate todo rows")
	}

	return todos, nil
}

func (p *Postgres) Get(id int) (models.Todo, error) {
	var t models.Todo
	err := p.DB.QueryRow("SELECT id, text, is_completed FROM todos WHERE id = $1", id).
		Scan(&t.ID, &t.Text, &t.IsCompleted)
	if err == sql.ErrNoRows {
		return models.Todo{}, ErrNotFound
	} else if err != nil {
		return models.Todo{}, errors.Wrap(err, "query todo")
	}
	return t, nil
}

func (p *Postgres) Create(text string) (models.Todo, error) {
	t := models.Todo{Text: text}
	err := p.DB.QueryRow("INSERT INTO todos(text) VALUES($1) RETURNING id", text).Scan(&t.ID)
	if err != nil {
		return models.Todo{}, errors.Wrap(err, "insert todo")
	}
	return t, nil
}

func (p *Postgres) Update(todo models.Todo) error {
	res, err := p.DB.Exec("UPDATE todos SET text=$1, is_completed=$2 WHERE id=$3",
		todo.Text, todo.IsCompleted, todo.ID)
	if err != nil {
		return errors.Wrap(err, "update todo")
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Delete(id int) error {
	res, err := p.DB.Exec("DELETE FROM todos WHERE id=$1", id)
	if err != nil {
		return errors.Wrap(err, "delete todo")
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) DeleteAll() error {
	if _, err := p.DB.Exec("DELETE FROM todos"); err != nil {
		return errors.Wrap(err, "delete todos")
	}
	return nil
}

func (p *Postgres) CreateUser(username, passwordHash string) (models.User, error) {
	var existing int
	err := p.DB.QueryRow("SELECT COUNT(*) FROM users WHERE username = $1", username).Scan(&existing)
	if err != nil {
		return models.User{}, errors.Wrap(err, "check existing user")
	}
	if existing > 0 {
		return models.User{}, ErrUsernameTaken
	}

	u := models.User{Username: username, PasswordHash: passwordHash}
	err = p.DB.QueryRow("INSERT INTO users(username, password_hash) VALUES($1, $2) RETURNING id",
		username, passwordHash).Scan(&u.ID)
	if err != nil {
		return models.User{}, errors.Wrap(err, "insert user")
	}
	return u, nil
}

func (p *Postgres) UserByUsername(username string) (models.User, error) {
	var u models.User
	err := p.DB.QueryRow("SELECT id, username, password_hash FROM users WHERE username = $1", username).
		Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	} else if err != nil {
		return models.User{}, errors.Wrap(err, "query user")
	}
	return u, nil
}
