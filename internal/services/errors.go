// internal/services/errors.go
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

const (
	EntityCategory = "category"
	EntityProduct  = "product"
)

// NotFoundError names the missing entity and the key it was looked up by.
type NotFoundError struct {
	Entity string
	Key    interface{}
	msg    string
}

func (e *NotFoundError) Error() string {
	return e.msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func categoryNotFound(name string) error {
	return &NotFoundError{
		Entity: EntityCategory,
		Key:    name,
		msg:    fmt.Sprintf("Category not found: %s", name),
	}
}

func productNotFound(id uint) error {
	return &NotFoundError{
		Entity: EntityProduct,
		Key:    id,
		msg:    fmt.Sprintf("Product not found with id: %d", id),
	}
}
