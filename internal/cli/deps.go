package cli

import (
	"io"
	"os"

	"github.com/xolan/shiftbook/internal/config"
	"github.com/xolan/shiftbook/internal/service"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services
	Services *service.Services
	Config   config.Config
}

// NewDeps creates a new Deps with the given services writing to the
// process streams
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
		Config:   services.Config.Get(),
	}
}

// Fail prints an error in the Error/Details/Hint layout and exits with code 1.
// Empty details or hint lines are left out.
func (d *Deps) Fail(message string, err error, hint string) {
	_, _ = io.WriteString(d.Stderr, "Error: "+message+"\n")
	if err != nil {
		_, _ = io.WriteString(d.Stderr, "Details: "+err.Error()+"\n")
	}
	if hint != "" {
		_, _ = io.WriteString(d.Stderr, "Hint: "+hint+"\n")
	}
	d.Exit(1)
}
