package notak

// Command represents a discrete application operation with its specific
// configuration.
//
// Each command implementation carries the parameters for one operation,
// while [Parse] handles routing from command-line arguments and [Main]
// dispatches execution to the matching method on [App]. Adding an
// operation means adding a command type; existing commands stay
// untouched.
type Command interface {
	// Name returns the command identifier used for routing. It must
	// match the CLI sub-command name.
	Name() string
}

// MigrateCommand initializes or updates the database schema to match
// the Note model. It is safe to run repeatedly: only missing schema
// elements are created and no data is dropped. Run it before the first
// server start and after model changes.
type MigrateCommand struct {
	// All configuration comes from App.Config.
}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

// RunCommand starts the HTTP API server. The listen port, store backend
// and read-only mode come from the shared [Config]; the server runs
// until interrupted and then shuts down gracefully.
type RunCommand struct {
	// All configuration comes from App.Config.
}

func (c *RunCommand) Name() string {
	return "run"
}
