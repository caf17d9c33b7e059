package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogAdd(ctx context.Context) error {
	c.io.Println("=== Novo registro ===")
	c.io.Println()

	req, err := c.promptLogForm(nil)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Salvando...")

	entry, err := c.logs.CreateLog(ctx, req)
	if err != nil {
		return fmt.Errorf("não foi possível salvar o registro: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Registro criado! (id %d)\n", entry.ID)

	return nil
}
