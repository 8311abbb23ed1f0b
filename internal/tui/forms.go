package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// LoginInput is what the interactive login form collects.
type LoginInput struct {
	Username string
	Password string
}

// RunLoginForm prompts for the missing login fields. Fields already supplied
// via flags are kept and not asked again.
func RunLoginForm(in *LoginInput) error {
	var fields []huh.Field

	if in.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(required("username")).
			Value(&in.Username))
	}
	if in.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(&in.Password))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("login prompt failed: %w", err)
	}
	return nil
}

// RegisterInput is what the interactive registration form collects.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Name        string
	IsOrganizer bool
}

// RunRegisterForm prompts for the missing registration fields.
func RunRegisterForm(in *RegisterInput) error {
	var fields []huh.Field

	if in.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Validate(required("username")).
			Value(&in.Username))
	}
	if in.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Validate(validEmail).
			Value(&in.Email))
	}
	if in.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Display name").
			Value(&in.Name))
	}
	if in.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Validate(required("password")).
			Value(&in.Password))
	}
	fields = append(fields, huh.NewConfirm().
		Title("Register as an organizer?").
		Value(&in.IsOrganizer))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("registration prompt failed: %w", err)
	}
	return nil
}

// PromptForConfirmation displays a yes/no confirmation prompt
func PromptForConfirmation(message string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	confirm := huh.NewConfirm().
		Title(message).
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

func required(name string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func validEmail(v string) error {
	if !strings.Contains(v, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}
