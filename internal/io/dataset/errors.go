package dataset

import "fmt"

// ParseError wraps a CSV parsing failure.
func ParseError(err error) error {
	return fmt.Errorf("cannot parse dataset CSV: %w", err)
}

// MissingColumnError reports a required column absent from the dataset.
// The schema is externally defined; a missing column means the upstream
// format changed and the run cannot proceed.
func MissingColumnError(col string) error {
	return fmt.Errorf("dataset is missing required column %q", col)
}

// DateError reports an unparseable date value. The row number refers to
// the CSV file (header is row 1).
func DateError(row int, value string, err error) error {
	return fmt.Errorf("cannot parse date %q at row %d: %w", value, row, err)
}

// EmptyDatasetError reports a dataset with a header but no observations.
func EmptyDatasetError(src string) error {
	return fmt.Errorf("dataset %s contains no observations", src)
}
