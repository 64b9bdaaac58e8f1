// Package validation converts untrusted request payloads into typed
// requests and shapes failures into field-keyed error collections.
package validation

import (
	"encoding/json"
	"fmt"
)

// GeneralField keys errors that cannot be attributed to a named field.
const GeneralField = "general"

// ItemField returns the error key for positional failures in array payloads.
func ItemField(index int) string {
	return fmt.Sprintf("item_%d", index)
}

// Validation messages.
const (
	msgRequired   = "Field is required"
	msgNotString  = "Must be a string"
	msgNotObject  = "Expected a JSON object"
	msgBadPayload = "Invalid JSON payload"
)

// Error carries validation failures keyed by field name. Messages per
// field accumulate in validation order.
type Error struct {
	Fields map[string][]string
}

// NewError builds an Error with a single message for one field.
func NewError(field, message string) *Error {
	return &Error{Fields: map[string][]string{field: {message}}}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return "validation failed"
}

func (e *Error) add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// Kind is the expected JSON type of a schema field.
type Kind int

// Supported field kinds.
const (
	KindString Kind = iota
)

// Field describes one entry of a request schema.
type Field struct {
	Name     string
	Required bool
	Kind     Kind
}

// Schema lists the fields a request payload may carry.
type Schema []Field

// Validate decodes raw JSON and checks it against the schema. On failure
// it returns an *Error keyed by field name, with GeneralField for
// payload-level problems and ItemField keys for positional ones. A JSON
// null value counts as an absent field.
func (s Schema) Validate(raw []byte) (map[string]any, *Error) {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, NewError(GeneralField, msgBadPayload)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		if items, isArray := payload.([]any); isArray && len(items) > 0 {
			verr := &Error{}
			for i := range items {
				verr.add(ItemField(i), msgNotObject)
			}
			return nil, verr
		}
		return nil, NewError(GeneralField, msgNotObject)
	}

	verr := &Error{}
	for _, f := range s {
		value, present := obj[f.Name]
		if !present || value == nil {
			if f.Required {
				verr.add(f.Name, msgRequired)
			}
			continue
		}
		switch f.Kind {
		case KindString:
			if _, ok := value.(string); !ok {
				verr.add(f.Name, msgNotString)
			}
		}
	}
	if len(verr.Fields) > 0 {
		return nil, verr
	}
	return obj, nil
}

// CreateUserRequest is the validated payload for creating a user.
type CreateUserRequest struct {
	Name  string
	Email string
}

var createUserSchema = Schema{
	{Name: "name", Required: true, Kind: KindString},
	{Name: "email", Required: true, Kind: KindString},
}

// ParseCreateUser validates raw JSON into a CreateUserRequest.
func ParseCreateUser(raw []byte) (*CreateUserRequest, error) {
	obj, verr := createUserSchema.Validate(raw)
	if verr != nil {
		return nil, verr
	}
	return &CreateUserRequest{
		Name:  obj["name"].(string),
		Email: obj["email"].(string),
	}, nil
}

// UpdateUserRequest is the validated payload for a partial user update.
// Nil fields were absent from the payload.
type UpdateUserRequest struct {
	Name  *string
	Email *string
}

var updateUserSchema = Schema{
	{Name: "name", Kind: KindString},
	{Name: "email", Kind: KindString},
}

// ParseUpdateUser validates raw JSON into an UpdateUserRequest.
func ParseUpdateUser(raw []byte) (*UpdateUserRequest, error) {
	obj, verr := updateUserSchema.Validate(raw)
	if verr != nil {
		return nil, verr
	}
	req := &UpdateUserRequest{}
	if v, ok := obj["name"].(string); ok {
		req.Name = &v
	}
	if v, ok := obj["email"].(string); ok {
		req.Email = &v
	}
	return req, nil
}
