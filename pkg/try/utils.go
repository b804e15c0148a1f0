package try

import (
	"reflect"

	"go.uber.org/multierr"
)

// IsNil reports whether i is nil or a nil pointer.
func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Errors splits an error combined by ZipAll back into its parts.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}
	return multierr.Errors(err)
}
