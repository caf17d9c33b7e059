package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogList(ctx context.Context) error {
	c.io.Println("=== Meus registros ===")
	c.io.Println()

	entries, err := c.logs.GetLogs(ctx)
	if err != nil {
		return fmt.Errorf("não foi possível carregar os registros: %w", err)
	}

	if len(entries) == 0 {
		c.io.Println("Nenhum registro encontrado.")
		c.io.Println()
		c.io.Println("Use 'vitalog log add' para criar o primeiro.")
		return nil
	}

	c.io.Printf("%d registro(s):\n", len(entries))
	c.io.Println()

	for _, entry := range entries {
		c.io.Printf("%d. %s - %s\n", entry.ID, entry.Date, entry.Emotion)
		c.io.Printf("   Sono: %.1fh  Água: %.1fL  Exercício: %s  Descanso: %s\n",
			entry.SleepHours, entry.WaterLiters, yesNo(entry.Exercised), yesNo(entry.RestedMind))
		if entry.Notes != "" {
			c.io.Printf("   Notas: %s\n", entry.Notes)
		}
		c.io.Println()
	}

	return nil
}
