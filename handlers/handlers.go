package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/alstn2468/Redux-ToDo-Web-Backend/models"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/store"
	"github.com/alstn2468/Redux-ToDo-Web-Backend/token"
)

// genericErrorMessage is the single user-visible failure payload for the todo
// endpoints. Validation, not-found and store failures all collapse into it so
// the client contract stays uniform.
const genericErrorMessage = "An error has occurred. Please try again."

// Handlers holds the stores and the token codec, allowing methods to share
// them.
type Handlers struct {
	Todos store.TodoStore
	Users store.UserStore
	Codec *token.Codec
}

// New is a constructor for the Handlers struct.
func New(todos store.TodoStore, users store.UserStore, codec *token.Codec) *Handlers {
	return &Handlers{Todos: todos, Users: users, Codec: codec}
}

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondInternal maps any internal failure kind to the generic envelope and
// an internal-error status. Only method mismatch bypasses this mapping.
func respondInternal(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	respondWithJSON(w, http.StatusInternalServerError, errorEnvelope{Error: genericErrorMessage})
}

// respondMethodNotAllowed enumerates the permitted methods in the Allow
// header.
func respondMethodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// TodoCollection dispatches requests against the whole collection by method.
func (h *Handlers) TodoCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listTodos(w, r)
	case http.MethodPost:
		h.createTodo(w, r)
	case http.MethodDelete:
		h.deleteAllTodos(w, r)
	default:
		respondMethodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodDelete)
	}
}

// TodoItem dispatches requests against a single identified record by method.
func (h *Handlers) TodoItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.updateTodo(w, r)
	case http.MethodDelete:
		h.deleteTodo(w, r)
	default:
		respondMethodNotAllowed(w, http.MethodPut, http.MethodDelete)
	}
}

func (h *Handlers) listTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.Todos.List()
	if err != nil {
		respondInternal(w, err)
		return
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	respondWithJSON(w, http.StatusOK, dataEnvelope{Data: todos})
}

func (h *Handlers) createTodo(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInternal(w, err)
		return
	}
	defer r.Body.Close()

	if req.Text == nil {
		respondInternal(w, errors.New("missing required field: text"))
		return
	}

	t, err := h.Todos.Create(*req.Text)
	if err != nil {
		respondInternal(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dataEnvelope{Data: t})
}

func (h *Handlers) deleteAllTodos(w http.ResponseWriter, r *http.Request) {
	if err := h.Todos.DeleteAll(); err != nil {
		respondInternal(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondInternal(w, err)
		return
	}

	var req models.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondInternal(w, err)
		return
	}
	defer r.Body.Close()

	t, err := h.Todos.Get(id)
	if err != nil {
		respondInternal(w, err)
		return
	}

	// Partial update: fields absent from the request stay unchanged.
	if req.Text != nil {
		t.Text = *req.Text
	}
	if req.IsCompleted != nil {
		t.IsCompleted = *req.IsCompleted
	}

	if err := h.Todos.Update(t); err != nil {
		respondInternal(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, dataEnvelope{Data: t})
}

func (h *Handlers) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondInternal(w, err)
		return
	}

	if err := h.Todos.Delete(id); err != nil {
		respondInternal(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
