package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogGet(ctx context.Context, id int64) error {
	c.io.Println("=== Detalhes do registro ===")
	c.io.Println()

	entry, err := c.logs.GetLogByID(ctx, id)
	if err != nil {
		return fmt.Errorf("não foi possível carregar o registro %d: %w", id, err)
	}

	c.printLog(entry)

	return nil
}
