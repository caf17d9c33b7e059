package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
	"github.com/LucasAlmeida-cmd/vitalog/internal/models"
	"github.com/LucasAlmeida-cmd/vitalog/internal/validation"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

func (c *Cli) runLog(ctx context.Context, args []string) error {
	if c.session.State() != session.StateAuthenticated {
		return fmt.Errorf("não autenticado. Execute 'vitalog login' primeiro")
	}

	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: vitalog log <list|add|get|edit|delete>")
	}

	switch args[0] {
	case "list":
		return c.runLogList(ctx)
	case "add":
		return c.runLogAdd(ctx)
	case "get":
		id, err := parseLogID(args[1:])
		if err != nil {
			return err
		}
		return c.runLogGet(ctx, id)
	case "edit":
		id, err := parseLogID(args[1:])
		if err != nil {
			return err
		}
		return c.runLogEdit(ctx, id)
	case "delete":
		id, err := parseLogID(args[1:])
		if err != nil {
			return err
		}
		return c.runLogDelete(ctx, id)
	default:
		return fmt.Errorf("unknown subcommand: %s. Use: list, add, get, edit, or delete", args[0])
	}
}

func parseLogID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing log ID. Usage: vitalog log <get|edit|delete> <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid log ID: %s", args[0])
	}
	return id, nil
}

// promptLogForm collects and validates the daily log fields. When defaults is
// non-nil the current values are offered and kept on empty input.
func (c *Cli) promptLogForm(defaults *models.LogEntry) (pkgapi.LogRequest, error) {
	var req pkgapi.LogRequest

	read := func(label, current string) (string, error) {
		if defaults == nil {
			return c.io.ReadInput(fmt.Sprintf("%s: ", label))
		}
		return c.promptWithDefault(label, current)
	}

	var cur struct {
		date, emotion, sleep, water string
		exercised, rested           bool
		notes                       string
	}
	if defaults != nil {
		cur.date = defaults.Date
		cur.emotion = defaults.Emotion
		cur.sleep = strconv.FormatFloat(defaults.SleepHours, 'f', -1, 64)
		cur.water = strconv.FormatFloat(defaults.WaterLiters, 'f', -1, 64)
		cur.exercised = defaults.Exercised
		cur.rested = defaults.RestedMind
		cur.notes = defaults.Notes
	}

	date, err := read("Data (AAAA-MM-DD)", cur.date)
	if err != nil {
		return req, fmt.Errorf("failed to read date: %w", err)
	}

	emotion, err := read("Emoção", cur.emotion)
	if err != nil {
		return req, fmt.Errorf("failed to read emotion: %w", err)
	}

	sleep, err := read("Horas de sono", cur.sleep)
	if err != nil {
		return req, fmt.Errorf("failed to read sleep hours: %w", err)
	}

	water, err := read("Litros de água", cur.water)
	if err != nil {
		return req, fmt.Errorf("failed to read water liters: %w", err)
	}

	exercised, err := c.readYesNo("Fez exercício?", cur.exercised)
	if err != nil {
		return req, fmt.Errorf("failed to read exercise answer: %w", err)
	}

	rested, err := c.readYesNo("Descansou a mente?", cur.rested)
	if err != nil {
		return req, fmt.Errorf("failed to read rest answer: %w", err)
	}

	notes, err := read("Notas", cur.notes)
	if err != nil {
		return req, fmt.Errorf("failed to read notes: %w", err)
	}

	errs := validation.ValidateLog(validation.LogForm{
		Date:        date,
		Emotion:     emotion,
		SleepHours:  sleep,
		WaterLiters: water,
	})
	if !errs.Valid() {
		c.io.Println()
		c.printValidationErrors(errs, "data", "emocao", "horasSono", "aguaLitros")
		return req, fmt.Errorf("dados inválidos")
	}

	// Validation already checked the numeric format.
	sleepHours, _ := strconv.ParseFloat(sleep, 64)
	waterLiters, _ := strconv.ParseFloat(water, 64)

	return pkgapi.LogRequest{
		Date:        date,
		Emotion:     emotion,
		SleepHours:  sleepHours,
		WaterLiters: waterLiters,
		Exercised:   exercised,
		RestedMind:  rested,
		Notes:       notes,
	}, nil
}

func (c *Cli) printLog(entry *models.LogEntry) {
	c.io.Printf("Data:           %s\n", entry.Date)
	c.io.Printf("Emoção:         %s\n", entry.Emotion)
	c.io.Printf("Horas de sono:  %s\n", strconv.FormatFloat(entry.SleepHours, 'f', -1, 64))
	c.io.Printf("Litros de água: %s\n", strconv.FormatFloat(entry.WaterLiters, 'f', -1, 64))
	c.io.Printf("Fez exercício:  %s\n", yesNo(entry.Exercised))
	c.io.Printf("Descansou:      %s\n", yesNo(entry.RestedMind))
	if entry.Notes != "" {
		c.io.Printf("Notas:          %s\n", entry.Notes)
	}
}

func yesNo(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}
