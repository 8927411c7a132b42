package statsview

import (
	"io"
)

// DefaultAddress is used by romtest unless -statsview_addr says otherwise.
const DefaultAddress = "localhost:12600"

// Path is where the graphs are served relative to the listen address.
const Path = "/debug/statsview"

// Server is a running viewer. The zero value and nil are both valid and stopped.
type Server struct {
	stop func()
}

// Launch starts serving on addr in the background and writes the URL to output.
func Launch(output io.Writer, addr string) *Server {
	return &Server{stop: launch(output, addr)}
}

// Stop shuts the server down. It's safe to call more than once.
func (s *Server) Stop() {
	if s == nil || s.stop == nil {
		return
	}
	s.stop()
	s.stop = nil
}
