package simplecatalog

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Error types
var (
	// ErrUserNotFound indicates a user was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrContentNotFound indicates an identifier matched neither variant
	ErrContentNotFound = errors.New("content not found (movie or tvshow)")

	// ErrListItemNotFound indicates a my-list entry was not found
	ErrListItemNotFound = errors.New("item not found in my list")

	// ErrListItemExists indicates the (user, content) pair is already in the list
	ErrListItemExists = errors.New("item already in my list")

	// ErrUsernameTaken indicates the username is already in use
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidMediaKind indicates an unknown media kind
	ErrInvalidMediaKind = errors.New("invalid media kind")

	// ErrInvalidGenre indicates an unknown genre
	ErrInvalidGenre = errors.New("invalid genre")

	// ErrTitleRequired indicates content was submitted without a title
	ErrTitleRequired = errors.New("title is required")

	// ErrUsernameRequired indicates a user was submitted without a username
	ErrUsernameRequired = errors.New("username is required")
)

// ContentError represents an error related to catalog operations
type ContentError struct {
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// ListError represents an error related to my-list operations
type ListError struct {
	Username  string
	ContentID uuid.UUID
	Op        string
	Err       error
}

func (e *ListError) Error() string {
	return fmt.Sprintf("mylist operation %s failed for user %s, content %s: %v", e.Op, e.Username, e.ContentID, e.Err)
}

func (e *ListError) Unwrap() error {
	return e.Err
}

// UserError represents an error related to user operations
type UserError struct {
	Username string
	Op       string
	Err      error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("user operation %s failed for user %s: %v", e.Op, e.Username, e.Err)
}

func (e *UserError) Unwrap() error {
	return e.Err
}
