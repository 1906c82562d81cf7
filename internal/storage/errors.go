package storage

import "fmt"

// ReadError - сохранённое состояние не удалось прочитать или разобрать.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("storage read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError - состояние не удалось сохранить.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("storage write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
