package main

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/construction-site/internal/auth"
	"github.com/BruksfildServices01/construction-site/internal/httperr"
	infraRepo "github.com/BruksfildServices01/construction-site/internal/infra/repository"
	"github.com/BruksfildServices01/construction-site/internal/models"
)

var adminOpts struct {
	email    string
	name     string
	password string
	role     string
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create a back-office account",
	Args:  cobra.NoArgs,
	RunE:  runCreateAdmin,
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminOpts.email, "email", "", "login e-mail")
	f.StringVar(&adminOpts.name, "name", "", "display name")
	f.StringVar(&adminOpts.password, "password", "", "initial password")
	f.StringVar(&adminOpts.role, "role", models.RoleAdmin, "admin or editor")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("name")
	_ = createAdminCmd.MarkFlagRequired("password")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	if _, err := mail.ParseAddress(adminOpts.email); err != nil {
		return errors.New("invalid --email")
	}
	if adminOpts.role != models.RoleAdmin && adminOpts.role != models.RoleEditor {
		return errors.New("--role must be admin or editor")
	}
	if err := auth.ValidatePassword(adminOpts.password); err != nil {
		return err
	}

	hash, err := auth.HashPassword(adminOpts.password)
	if err != nil {
		return err
	}

	_, log, db, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	user := models.AdminUser{
		Name:         strings.TrimSpace(adminOpts.name),
		Email:        adminOpts.email,
		PasswordHash: hash,
		Role:         adminOpts.role,
	}

	repo := infraRepo.NewAdminUserGormRepository(db)
	if err := repo.Create(cmd.Context(), &user); err != nil {
		if httperr.IsUniqueViolation(err) {
			return errors.New("an account with this e-mail already exists")
		}
		return err
	}

	log.Info("admin created", zap.Uint("id", user.ID), zap.String("email", user.Email), zap.String("role", user.Role))
	return nil
}
