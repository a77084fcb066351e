package database

import "fmt"

// ConnectivityError means the server could not be reached or refused the
// credentials. Nothing has been mutated when it is returned.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connect to mongodb: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// OperationError is a failed list, create, delete, insert, find or index call.
// Mutations made earlier in the same run are not rolled back.
type OperationError struct {
	Op         string
	Collection string
	Err        error
}

func (e *OperationError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *OperationError) Unwrap() error { return e.Err }
