package notak

import (
	"context"
	"fmt"
)

// Main is the entry point for the notak application. It parses the
// arguments, builds the App and dispatches the selected command. It is
// called from cmd/notak and directly from tests, which is why it takes
// the context and arguments explicitly instead of reading globals.
func Main(ctx context.Context, args []string) error {
	cmd, config, err := Parse(args)
	if err != nil {
		return err
	}

	app, err := New(config)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	defer app.Close()

	switch c := cmd.(type) {
	case *MigrateCommand:
		return app.Migrate(ctx, c)
	case *RunCommand:
		return app.Run(ctx, c)
	default:
		return fmt.Errorf("unhandled command: %s", cmd.Name())
	}
}
