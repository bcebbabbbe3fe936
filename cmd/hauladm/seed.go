package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"haul/cmd"
	"haul/internal/core/application/usecases/commands"
	"haul/internal/core/domain/model/identity"

	"gopkg.in/yaml.v3"
)

// SeedFile is the users bootstrap document:
//
//	users:
//	  - username: root
//	    password: changeme
//	    roles: [admin]
type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

type SeedUser struct {
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
	Roles    []string `yaml:"roles"`
}

func parseSeedFile(r io.Reader) (SeedFile, error) {
	var f SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return SeedFile{}, nil
		}
		return SeedFile{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, u := range f.Users {
		if strings.TrimSpace(u.Username) == "" {
			return SeedFile{}, fmt.Errorf("users[%d]: username is required", i)
		}
		for _, role := range u.Roles {
			if !identity.IsKnownRole(role) {
				return SeedFile{}, fmt.Errorf("users[%d]: unknown role %q", i, role)
			}
		}
	}
	return f, nil
}

func seedFromFile(ctx context.Context, app *cmd.CompositionRoot, path string, out io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	seed, err := parseSeedFile(file)
	if err != nil {
		return err
	}

	register := app.CreateRegisterUserCommandHandler()
	grant := app.CreateAdminUpdateUserCommandHandler()

	for _, u := range seed.Users {
		regCmd, err := commands.NewRegisterUserCommand(u.Username, u.Password)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		res, err := register.Handle(ctx, regCmd)
		if err != nil {
			return err
		}
		if res.Type == commands.RegisterUserSucceeded {
			fmt.Fprintf(out, "created %s\n", u.Username)
		} else {
			fmt.Fprintf(out, "skipped %s: %s\n", u.Username, strings.Join(res.Errors, " "))
		}

		if len(u.Roles) == 0 {
			continue
		}
		grantCmd, err := commands.NewAdminUpdateUserCommand(u.Username, u.Roles, nil)
		if err != nil {
			return fmt.Errorf("user %s: %w", u.Username, err)
		}
		granted, err := grant.Handle(ctx, grantCmd)
		if err != nil {
			return err
		}
		if granted.Type != commands.AdminUpdateUserSucceeded {
			return fmt.Errorf("user %s: %s", u.Username, strings.Join(granted.Errors, " "))
		}
		fmt.Fprintf(out, "granted %s: %s\n", u.Username, strings.Join(u.Roles, ", "))
	}
	return nil
}
