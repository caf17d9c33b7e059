package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogEdit(ctx context.Context, id int64) error {
	c.io.Println("=== Editar registro ===")
	c.io.Println()

	// Fetch first so the prompts can offer the current values.
	current, err := c.logs.GetLogByID(ctx, id)
	if err != nil {
		return fmt.Errorf("não foi possível carregar o registro %d: %w", id, err)
	}

	c.io.Println("Pressione Enter para manter o valor atual.")
	c.io.Println()

	req, err := c.promptLogForm(current)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Salvando...")

	if _, err := c.logs.UpdateLog(ctx, id, req); err != nil {
		return fmt.Errorf("não foi possível atualizar o registro: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Registro atualizado!")

	return nil
}
