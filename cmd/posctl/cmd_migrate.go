package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NotSleepp/possbien/internal/infrastructure/postgres"
	"github.com/NotSleepp/possbien/pkg/config"
	"github.com/NotSleepp/possbien/pkg/logger"
)

// bootMigrator carga la configuración y abre el migrador sobre la BD configurada.
func bootMigrator() (*postgres.Migrator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	return postgres.NewMigrator(cfg.DB.ConnectionString(), log)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migraciones del esquema",
}

// posctl migrate up
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := bootMigrator()
		if err != nil {
			return err
		}
		defer m.Close()
		return m.Up()
	},
}

// posctl migrate down --steps N
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte migraciones (por defecto la última)",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, _ := cmd.Flags().GetInt("steps")
		all, _ := cmd.Flags().GetBool("all")
		if all {
			steps = 0
		} else if steps <= 0 {
			return fmt.Errorf("--steps debe ser mayor que 0 (use --all para revertir todo)")
		}
		m, err := bootMigrator()
		if err != nil {
			return err
		}
		defer m.Close()
		return m.Down(steps)
	},
}

// posctl migrate version
var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión aplicada del esquema",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := bootMigrator()
		if err != nil {
			return err
		}
		defer m.Close()
		version, dirty, err := m.Version()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "versión %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "número de migraciones a revertir")
	migrateDownCmd.Flags().Bool("all", false, "revierte todas las migraciones")
}
