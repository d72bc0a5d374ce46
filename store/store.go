// Package store defines the record store abstraction used by the handlers
// and its PostgreSQL and in-memory implementations.
package store

import (
	"github.com/pkg/errors"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
)

// ErrNotFound is returned when an identifier has no record.
var ErrNotFound = errors.New("store: record not found")

// ErrUsernameTaken is returned when registering an already existing username.
var ErrUsernameTaken = errors.New("store: username already exists")

// TodoStore is the persistence contract for todo records. Implementations
// must serialize concurrent writes to the same identifier; the handlers
// carry no locking of their own.
type TodoStore interface {
	// List returns every todo ordered by ascending id.
	List() ([]models.Todo, error)
	// Get returns the todo with the given id or ErrNotFound.
	Get(id int) (models.Todo, error)
	// Create persists a new todo with the given text and returns it with
	// its store-assigned id. The completion flag starts false.
	Create(text string) (models.Todo, error)
	// Update overwrites the record matching todo.ID or returns ErrNotFound.
	Update(todo models.Todo) error
	// Delete removes the todo with the given id or returns ErrNotFound.
	Delete(id int) error
	// DeleteAll removes every todo. Deleting an empty collection succeeds.
	DeleteAll() error
}

// UserStore is the persistence contract for user records.
type UserStore interface {
	// CreateUser persists a new user or returns ErrUsernameTaken.
	CreateUser(username, passwordHash string) (models.User, error)
	// UserByUsername returns the user with the given username or ErrNotFound.
	UserByUsername(username string) (models.User, error)
}
