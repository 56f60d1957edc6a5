package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NotSleepp/possbien/internal/infrastructure/postgres"
	"github.com/NotSleepp/possbien/pkg/config"
)

// posctl seed --email admin@tienda.co --password ...
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Crea la primera empresa, el rol admin y su usuario",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		in := postgres.SeedInput{}
		in.CompanyName, _ = cmd.Flags().GetString("empresa")
		in.CompanyNIT, _ = cmd.Flags().GetString("nit")
		in.AdminName, _ = cmd.Flags().GetString("nombre")
		in.AdminEmail, _ = cmd.Flags().GetString("email")
		in.Password, _ = cmd.Flags().GetString("password")
		in.Platform, _ = cmd.Flags().GetBool("plataforma")
		if in.Password == "" {
			in.Password = os.Getenv("SEED_ADMIN_PASSWORD")
		}

		res, err := postgres.Seed(ctx, pool, in)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if res.Skipped {
			fmt.Fprintf(out, "el usuario %s ya existe (empresa %s); no se creó nada\n", in.AdminEmail, res.CompanyID)
			return nil
		}
		fmt.Fprintf(out, "empresa %s\nrol %s\nusuario %s\n", res.CompanyID, res.RoleID, res.UserID)
		return nil
	},
}

func init() {
	seedCmd.Flags().String("empresa", "Empresa Demo", "nombre de la empresa")
	seedCmd.Flags().String("nit", "900000000-0", "NIT de la empresa")
	seedCmd.Flags().String("nombre", "Administrador", "nombre del usuario administrador")
	seedCmd.Flags().String("email", "admin@possbien.local", "email del administrador")
	seedCmd.Flags().String("password", "", "password del administrador (o SEED_ADMIN_PASSWORD)")
	seedCmd.Flags().Bool("plataforma", false, "crear el operador de la plataforma (puede dar de alta empresas)")
}
