package cli

import (
	"context"
	"time"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status da sessão ===")
	c.io.Println()

	if c.session.State() != session.StateAuthenticated {
		c.io.Println("Status: não autenticado")
		c.io.Println()
		c.io.Println("Execute 'vitalog login' para entrar.")
		return nil
	}

	user := c.session.CurrentUser()

	c.io.Println("Status: autenticado")
	c.io.Printf("Nome:  %s\n", user.Name)
	c.io.Printf("Email: %s\n", user.Email)
	if user.Role != "" {
		c.io.Printf("Perfil: %s\n", user.Role)
	}

	token, err := c.session.Token(ctx)
	if err != nil {
		return nil
	}

	if expiry, ok := session.TokenExpiry(token); ok {
		remaining := time.Until(expiry)
		c.io.Printf("Token expira em: %s\n", expiry.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Tempo restante: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token expirado. Faça login novamente.")
		}
	}

	return nil
}
