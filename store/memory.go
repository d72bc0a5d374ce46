package store

import (
	"sort"
	"sync"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
)

// Memory implements TodoStore and UserStore in process memory. It backs the
// tests and the DB_DRIVER=memory mode; a mutex serializes all access.
type Memory struct {
	mu         sync.Mutex
	todos      map[int]models.Todo
	users      map[string]models.User
	nextTodoID int
	nextUserID int
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		todos:      make(map[int]models.Todo),
		users:      make(map[string]models.User),
		nextTodoID: 1,
		nextUserID: 1,
	}
}

func (m *Memory) List() ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var todos []models.Todo
	for _, t := range m.todos {
		todos = append(todos, t)
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID < todos[j].ID })
	return todos, nil
}

func (m *Memory) Get(id int) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return t, nil
}

func (m *Memory) Create(text string) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := models.Todo{ID: m.nextTodoID, Text: text}
	m.nextTodoID++
	m.todos[t.ID] = t
	return t, nil
}

func (m *Memory) Update(todo models.Todo) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[todo.ID]; !ok {
		return ErrNotFound
	}
	m.todos[todo.ID] = todo
	return nil
}

func (m *Memory) Delete(id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[id]; !ok {
		return ErrNotFound
	}
	delete(m.todos, id)
	return nil
}

func (m *Memory) DeleteAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.todos = make(map[int]models.Todo)
	return nil
}

func (m *Memory) CreateUser(username, passwordHash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[username]; ok {
		return models.User{}, ErrUsernameTaken
	}
	u := models.User{ID: m.nextUserID, Username: username, PasswordHash: passwordHash}
	m.nextUserID++
	m.users[username] = u
	return u, nil
}

func (m *Memory) UserByUsername(username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[username]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}
