package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRecord is returned when a record decoded from the API is missing required fields.
var ErrInvalidRecord = errors.New("invalid record")

// ID is an entity identifier. The API emits both numeric and string ids; both decode to
// their textual form. A foreign key expanded into a nested object decodes to that object's
// id.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var ref struct {
			ID ID `json:"id"`
		}
		if err := json.Unmarshal(data, &ref); err != nil {
			return fmt.Errorf("nested id: %w", err)
		}
		*id = ref.ID
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string, number or object: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Empty reports whether the id carries no value.
func (id ID) Empty() bool { return strings.TrimSpace(string(id)) == "" }

// Entity is any record addressable by id in the reference store.
type Entity interface {
	EntityID() ID
}

// Validator is implemented by records checked at the API boundary.
type Validator interface {
	Validate() error
}

// ValidateAll validates every item, reporting the index of the first failure.
func ValidateAll[T Validator](items []T) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func requireID(kind string, id ID) error {
	if id.Empty() {
		return fmt.Errorf("%w: %s without id", ErrInvalidRecord, kind)
	}
	return nil
}

func requireField(kind, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s missing %s", ErrInvalidRecord, kind, field)
	}
	return nil
}
