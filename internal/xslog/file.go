package xslog

import (
	"fmt"
	"os"
)

// maxLogFileSize caps the managed log file; a file past it is truncated at
// open rather than rotated.
const maxLogFileSize = 5 << 20

// OpenLogFile opens the managed log file for appending, creating it if needed.
func OpenLogFile(path string) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogFileSize {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
