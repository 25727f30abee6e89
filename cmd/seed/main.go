// Command seed prepares a Craft Art Market database: it creates admin
// accounts and imports the bundled catalog.
//
// Usage:
//
//	go run ./cmd/seed admin --email admin@example.com --name "Asha"
//	go run ./cmd/seed catalog
//	go run ./cmd/seed hash-password
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/capoeira360/Craft-Art-Market-sub000/cache"
	"github.com/capoeira360/Craft-Art-Market-sub000/catalog"
	"github.com/capoeira360/Craft-Art-Market-sub000/config"
	"github.com/capoeira360/Craft-Art-Market-sub000/models"
	"github.com/capoeira360/Craft-Art-Market-sub000/services"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the Craft Art Market database",
		Long: `Seed prepares the database used by the Craft Art Market API.

DATABASE_URL and DB_DRIVER are read from the environment (and .env),
exactly as the server reads them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			config.SetCurrent(cfg)
			_, err = config.InitLogger(cfg)
			return err
		},
	}

	cmd.AddCommand(adminCmd(), catalogCmd(), hashPasswordCmd())
	return cmd
}

func adminCmd() *cobra.Command {
	var email, name, password, role string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create an admin account",
		Long:  "Create an admin account. Missing details are prompted for.",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer config.CloseDB()

			switch role {
			case models.RoleSuperAdmin, models.RoleAdmin:
			default:
				return fmt.Errorf("role must be %s or %s", models.RoleSuperAdmin, models.RoleAdmin)
			}

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			if email == "" {
				email = prompt(in, out, "Email: ")
			}
			if name == "" {
				name = prompt(in, out, "Name: ")
			}
			if password == "" {
				password = prompt(in, out, "Password (min 8 characters): ")
				if confirm := prompt(in, out, "Confirm Password: "); confirm != password {
					return errors.New("passwords do not match")
				}
			}
			if email == "" || name == "" {
				return errors.New("email and name cannot be empty")
			}
			if !services.GetAdminAuthService().ValidatePassword(password) {
				return errors.New("password must be at least 8 characters")
			}

			directory := services.NewGormAdminDirectory(db)
			if err := directory.Migrate(); err != nil {
				return fmt.Errorf("migrate admins: %w", err)
			}

			ctx, cancel := config.WithTimeout()
			defer cancel()

			existing, err := directory.FindByEmail(ctx, email)
			if err != nil {
				return err
			}
			if existing.IsFound() {
				return fmt.Errorf("admin with email %q already exists", email)
			}

			admin, err := directory.Create(ctx, email, name, password, role)
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "════════════════════════════════════════════════════════════")
			fmt.Fprintln(out, "Admin Created Successfully")
			fmt.Fprintln(out, "════════════════════════════════════════════════════════════")
			fmt.Fprintf(out, "ID:    %s\n", admin.ID)
			fmt.Fprintf(out, "Email: %s\n", admin.Email)
			fmt.Fprintf(out, "Name:  %s\n", admin.Name)
			fmt.Fprintf(out, "Role:  %s\n", admin.Role)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Login at POST /api/v1/admin/login with email and password")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when empty)")
	cmd.Flags().StringVar(&role, "role", models.RoleSuperAdmin, "Role (super_admin, admin)")
	return cmd
}

func catalogCmd() *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import the bundled catalog into the database",
		Long: `Import the embedded seed catalog (crafts, artisans, categories and
featured items) into the database, replacing rows with the same ids.
Cached collections in redis (REDIS_URL) are cleared for the imported
kinds. Run the server with CATALOG_SOURCE=database to serve it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer config.CloseDB()

			if err := config.ConnectRedis(config.Current()); err != nil {
				return err
			}
			defer config.CloseRedis()

			var client redis.Cmdable
			if config.RedisClient != nil {
				client = config.RedisClient
			}
			return importCatalog(context.Background(), db, client, kinds)
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "Only import these kinds (default all)")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long:  "Print a bcrypt hash for ADMIN_PASSWORD_HASH, used when the server runs without a database.",
		RunE: func(cmd *cobra.Command, args []string) error {
			auth := services.GetAdminAuthService()
			password := prompt(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), "Password (min 8 characters): ")
			if !auth.ValidatePassword(password) {
				return errors.New("password must be at least 8 characters")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

// importCatalog writes the seed collections into db and drops the server's
// cached copies of the imported kinds from redis, when one is configured.
func importCatalog(ctx context.Context, db *gorm.DB, client redis.Cmdable, kinds []string) error {
	seed, err := catalog.LoadSeedRepository(config.Current().CatalogMatchModes)
	if err != nil {
		return fmt.Errorf("load seed catalog: %w", err)
	}

	repo := catalog.NewGormRepository(db)
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}

	wanted := make(map[models.CatalogKind]bool, len(kinds))
	for _, raw := range kinds {
		kind, ok := models.ParseCatalogKind(raw)
		if !ok {
			return fmt.Errorf("unknown catalog kind %q", raw)
		}
		wanted[kind] = true
	}

	log := zap.L().Named("seed")
	imported := make([]models.CatalogKind, 0, len(models.CatalogKinds))
	for _, c := range seed.Collections() {
		if len(wanted) > 0 && !wanted[c.Kind] {
			continue
		}
		if err := repo.Import(ctx, c); err != nil {
			return fmt.Errorf("import %s: %w", c.Kind, err)
		}
		imported = append(imported, c.Kind)
		log.Info("imported catalog",
			zap.String("kind", string(c.Kind)),
			zap.Int("items", len(c.Items)),
			zap.Int("categories", len(c.Categories)),
		)
	}

	if client == nil || len(imported) == 0 {
		return nil
	}
	if err := cache.NewCollectionCache(repo, client, 0).Invalidate(ctx, imported...); err != nil {
		return err
	}
	log.Info("cleared cached collections", zap.Int("kinds", len(imported)))
	return nil
}

func openDatabase() (*gorm.DB, error) {
	if err := config.InitDB(config.Current()); err != nil {
		return nil, err
	}
	if config.DB == nil {
		return nil, errors.New("DATABASE_URL is required")
	}
	return config.DB, nil
}

func prompt(in *bufio.Reader, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}
