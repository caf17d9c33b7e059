package cli

import (
	"context"
	"fmt"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
	"github.com/LucasAlmeida-cmd/vitalog/internal/validation"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Criar conta ===")
	c.io.Println()

	name, err := c.io.ReadInput("Nome: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	cpf, err := c.io.ReadInput("CPF (000.000.000-00): ")
	if err != nil {
		return fmt.Errorf("failed to read cpf: %w", err)
	}

	birthDate, err := c.io.ReadInput("Data de nascimento (AAAA-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read birth date: %w", err)
	}

	password, err := c.io.ReadPassword("Senha (mín. 6 caracteres): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirme a senha: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return fmt.Errorf("as senhas não coincidem")
	}

	errs := validation.ValidateRegistration(validation.RegistrationForm{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		BirthDate: birthDate,
		Password:  password,
	})
	if !errs.Valid() {
		c.io.Println()
		c.printValidationErrors(errs, "nomeUser", "email", "cpfUser", "dataAniversario", "password")
		return fmt.Errorf("dados inválidos")
	}

	c.io.Println()
	c.io.Println("Criando conta...")

	err = c.session.Register(ctx, pkgapi.RegisterRequest{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		BirthDate: birthDate,
		Password:  password,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Conta criada com sucesso!")

	if c.session.State() == session.StateAuthenticated {
		c.io.Printf("Bem-vindo(a), %s!\n", name)
	} else {
		c.io.Println("Execute 'vitalog login' para entrar na sua conta.")
	}

	return nil
}
