package util

import (
	"errors"
	"fmt"
)

// RecoveredPanicToError coerces a value returned by recover() into an error.
func RecoveredPanicToError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return err
	}

	if stringified, ok := recovered.(string); ok {
		return errors.New(stringified)
	}

	return fmt.Errorf("recovered from a panic that was neither a string nor an error: %v", recovered)
}
