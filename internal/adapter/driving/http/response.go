package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/twomenstudio/studiopanel/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the JSON body for the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the JSON representation of an account. The cleartext
// password never leaves through the API even though it is persisted.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// SessionResponse reports the current authentication state.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// AddUserResponse reports the outcome of an account add. Stored is false
// when the fixed two-account capacity was already reached and the add was
// silently ignored.
type AddUserResponse struct {
	Stored bool          `json:"stored"`
	User   *UserResponse `json:"user,omitempty"`
}

// ImageResponse carries the processed upload as a self-contained data URI.
type ImageResponse struct {
	DataURI string `json:"dataUri"`
}

// BlogHTMLResponse carries a blog post's content rendered to sanitized HTML.
type BlogHTMLResponse struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

// StorageResponse reports durable storage usage against the budget.
type StorageResponse struct {
	UsedBytes   int64 `json:"usedBytes"`
	BudgetBytes int64 `json:"budgetBytes"`
}

// toUserResponse converts an account to its JSON representation.
func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     string(u.Role),
	}
}

// toUserResponses converts the account collection.
func toUserResponses(users []model.User) []UserResponse {
	resp := make([]UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return resp
}
