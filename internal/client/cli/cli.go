// Package cli implements the interactive terminal commands.
package cli

import (
	"fmt"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/iocli"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/logs"
	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
	"github.com/LucasAlmeida-cmd/vitalog/internal/validation"
)

type Cli struct {
	io      iocli.IO
	session session.Session
	logs    logs.Service
}

func New(io iocli.IO, sess session.Session, logSvc logs.Service) *Cli {
	return &Cli{
		io:      io,
		session: sess,
		logs:    logSvc,
	}
}

func PrintUsage(io iocli.IO) {
	io.Println("VitaLog Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  vitalog [OPTIONS] COMMAND")
	io.Println()
	io.Println("Options:")
	io.Println("  --version          Show version information")
	io.Println("  --server URL       Server URL (default: http://localhost:8080)")
	io.Println("  --db PATH          Path to local database (default: vitalog-client.db)")
	io.Println("  --timeout DUR      Request timeout (default: 30s)")
	io.Println("  --log-level LEVEL  Log level: debug, info, warn, error (default: info)")
	io.Println()
	io.Println("Commands:")
	io.Println("  register           Criar uma nova conta")
	io.Println("  login              Entrar na sua conta")
	io.Println("  logout             Sair da conta")
	io.Println("  status             Mostrar o status da sessão")
	io.Println("  profile            Atualizar os dados do perfil")
	io.Println("  log list           Listar seus registros diários")
	io.Println("  log add            Criar um registro diário")
	io.Println("  log get <id>       Mostrar um registro")
	io.Println("  log edit <id>      Editar um registro")
	io.Println("  log delete <id>    Excluir um registro")
	io.Println()
	io.Println("Examples:")
	io.Println("  vitalog register")
	io.Println("  vitalog login")
	io.Println("  vitalog log add")
	io.Println("  vitalog --server https://example.com log list")
}

// promptWithDefault reads a value, keeping the current one on empty input.
func (c *Cli) promptWithDefault(label, current string) (string, error) {
	value, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// readYesNo reads a boolean answer. Empty input selects the default.
func (c *Cli) readYesNo(label string, def bool) (bool, error) {
	hint := "s/N"
	if def {
		hint = "S/n"
	}
	answer, err := c.io.ReadInput(fmt.Sprintf("%s (%s): ", label, hint))
	if err != nil {
		return false, err
	}
	switch answer {
	case "":
		return def, nil
	case "s", "S", "sim", "Sim", "y", "Y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// printValidationErrors prints the messages in a fixed field order so the
// output is stable.
func (c *Cli) printValidationErrors(errs validation.Errors, fields ...string) {
	c.io.Println("Corrija os campos abaixo:")
	for _, field := range fields {
		if msg, ok := errs[field]; ok {
			c.io.Printf("  - %s\n", msg)
		}
	}
}
