package service

import "fmt"

// NotFoundError is raised when no app exists for a requested id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("app with id - %d, not found", e.ID)
}

// AlreadyExistsError is raised when a create collides with a stored name.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("app with name - %s, already exist", e.Name)
}
