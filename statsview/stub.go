//go:build !statsview
// +build !statsview

package statsview

import (
	"io"
)

func launch(io.Writer, string) func() {
	return nil
}

// Available returns true when the server is compiled in.
func Available() bool {
	return false
}
