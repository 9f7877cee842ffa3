package storage

import "errors"

var ErrNotFound = errors.New("resource not found")
var ErrConflict = errors.New("resource conflict (e.g., duplicate key)")
var ErrForeignKey = errors.New("referenced resource does not exist")
var ErrDuplicateEmail = errors.New("email already in use")
