package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogDelete(ctx context.Context, id int64) error {
	c.io.Println("=== Excluir registro ===")
	c.io.Println()

	entry, err := c.logs.GetLogByID(ctx, id)
	if err != nil {
		return fmt.Errorf("não foi possível carregar o registro %d: %w", id, err)
	}

	c.io.Println("Você está prestes a excluir:")
	c.io.Println()
	c.printLog(entry)
	c.io.Println()

	confirm, err := c.readYesNo("Tem certeza?", false)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if !confirm {
		c.io.Println()
		c.io.Println("Exclusão cancelada.")
		return nil
	}

	if err := c.logs.DeleteLog(ctx, id); err != nil {
		return fmt.Errorf("não foi possível excluir o registro: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Registro excluído!")
	c.io.Println()

	// Show the refreshed list so the user sees the result.
	return c.runLogList(ctx)
}
