package cli

import (
	"context"
	"fmt"
)

// Run dispatches a command. Errors are returned to the caller, which decides
// the exit code.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "profile":
		return c.runProfile(ctx)
	case "log":
		return c.runLog(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
