//go:build !unix

package tty

import (
	"os"
	"time"
)

// fileInput is a terminal input. Without poll a trailing ESC is always the
// Escape key.
type fileInput struct {
	*os.File
}

func (fileInput) waitInput(time.Duration) bool {
	return false
}
