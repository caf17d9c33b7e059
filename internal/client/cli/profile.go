package cli

import (
	"context"
	"fmt"

	"github.com/LucasAlmeida-cmd/vitalog/internal/client/session"
	"github.com/LucasAlmeida-cmd/vitalog/internal/validation"
	pkgapi "github.com/LucasAlmeida-cmd/vitalog/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context) error {
	if c.session.State() != session.StateAuthenticated {
		return fmt.Errorf("não autenticado. Execute 'vitalog login' primeiro")
	}

	user := c.session.CurrentUser()

	c.io.Println("=== Atualizar perfil ===")
	c.io.Println()
	c.io.Println("Pressione Enter para manter o valor atual.")
	c.io.Println()

	name, err := c.promptWithDefault("Nome", user.Name)
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.promptWithDefault("Email", user.Email)
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	cpf, err := c.promptWithDefault("CPF", user.CPF)
	if err != nil {
		return fmt.Errorf("failed to read cpf: %w", err)
	}

	birthDate, err := c.promptWithDefault("Data de nascimento", user.BirthDate)
	if err != nil {
		return fmt.Errorf("failed to read birth date: %w", err)
	}

	// An empty password keeps the current one.
	password, err := c.io.ReadPassword("Nova senha (Enter para manter): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	errs := validation.ValidateProfileUpdate(validation.ProfileForm{
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
	c.io.Println("Atualizando perfil...")

	err = c.session.UpdateUser(ctx, pkgapi.UpdateUserRequest{
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
	c.io.Println("✓ Perfil atualizado com sucesso!")

	return nil
}
