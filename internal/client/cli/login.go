package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Senha: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := c.session.SignIn(ctx, email, password); err != nil {
		return err
	}

	user := c.session.CurrentUser()

	c.io.Println()
	c.io.Println("✓ Login realizado com sucesso!")
	if user != nil {
		c.io.Printf("Bem-vindo(a), %s!\n", user.Name)
	}

	return nil
}
