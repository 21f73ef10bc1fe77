package fetch

import "fmt"

// RequestError wraps a failed HTTP request for the dataset.
func RequestError(url string, err error) error {
	return fmt.Errorf("cannot fetch dataset from %s: %w", url, err)
}

// BadStatusError reports a non-200 response for the dataset URL.
func BadStatusError(url string, status int) error {
	return fmt.Errorf("cannot fetch dataset from %s: unexpected status %d", url, status)
}

// OpenFileError wraps a failure to open a local dataset file.
func OpenFileError(path string, err error) error {
	return fmt.Errorf("cannot open dataset file %s: %w", path, err)
}
