package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/xolan/shiftbook/internal/cli"
	"github.com/xolan/shiftbook/internal/service"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: service.NewServices,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
var deps = DefaultDeps()

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}

// withServices opens the services, hands the handlers a cli.Deps bound to
// them and closes them when fn returns
func withServices(fn func(d *cli.Deps)) {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to open shift data")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check the config file with 'shiftbook config'")
		deps.Exit(1)
		return
	}
	defer func() { _ = services.Close() }()

	d := cli.NewDeps(services)
	d.Stdout, d.Stderr, d.Stdin, d.Exit = deps.Stdout, deps.Stderr, deps.Stdin, deps.Exit
	fn(d)
}

// usageError prints a usage problem in the Error/Hint layout and exits
func usageError(message, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}
