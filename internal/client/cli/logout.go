package cli

import "context"

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	_ = c.session.SignOut(ctx)

	c.io.Println("✓ Sessão encerrada.")

	return nil
}
