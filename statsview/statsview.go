//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

func launch(output io.Writer, addr string) func() {
	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr := statsview.New()
	go mgr.Start()
	fmt.Fprintf(output, "runtime graphs at http://%s%s\n", addr, Path)
	return func() { mgr.Stop() }
}

// Available returns true when the server is compiled in.
func Available() bool {
	return true
}
