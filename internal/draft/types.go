package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidID is returned for ids that are not UUIDs.
var ErrInvalidID = errors.New("invalid draft id")

// Draft is an itinerary being edited. Data is the editor state, stored as is.
type Draft struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// New creates a draft with a fresh id. Empty data becomes an empty object.
func New(title string, data json.RawMessage) Draft {
	if len(data) == 0 {
		data = json.RawMessage("{}")
	}
	return Draft{ID: uuid.NewString(), Title: title, Data: data}
}

// ParseID normalizes a draft id.
func ParseID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidID, s, err)
	}
	return id.String(), nil
}
