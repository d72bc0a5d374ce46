package models

// Todo represents a todo record. The completion flag is stored as
// is_completed but travels as isCompleted on the wire.
type Todo struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

// CreateTodoRequest is the payload for creating a todo. Text is required;
// the completion flag is not accepted at creation and always starts false.
type CreateTodoRequest struct {
	Text *string `json:"text"`
}

// UpdateTodoRequest is the payload for a partial update. Pointer fields
// distinguish "absent" from a zero value so omitted fields stay unchanged.
type UpdateTodoRequest struct {
	Text        *string `json:"text"`
	IsCompleted *bool   `json:"isCompleted"`
}

// User represents a registered user.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Omit from JSON output for security
}

// CredentialsRequest defines the structure for user login and registration
// requests.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
