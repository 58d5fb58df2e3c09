package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dangerclosesec/catalog"
	"github.com/dangerclosesec/catalog/internal/audit"
	"github.com/dangerclosesec/catalog/internal/auth"
	"github.com/dangerclosesec/catalog/internal/config"
	"github.com/dangerclosesec/catalog/internal/migration"
	"github.com/dangerclosesec/catalog/internal/model"
	"github.com/dangerclosesec/catalog/internal/repository"
	"github.com/dangerclosesec/catalog/internal/seed"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	tablePrefix  string
	verbose      bool

	activeOnly  bool
	tokenRole   string
	tokenExpiry time.Duration
)

func init() {
	cfg := config.Load()

	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", cfg.DSN(), "Database connection string")
	rootCmd.PersistentFlags().StringVar(&tablePrefix, "prefix", cfg.Storage.TablePrefix, "Table name prefix")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	modulesCmd.Flags().BoolVar(&activeOnly, "active", false, "List active modules only")
	tokenCmd.Flags().StringVar(&tokenRole, "role", auth.RoleAdmin, "Role granted by the token")
	tokenCmd.Flags().DurationVar(&tokenExpiry, "expiry", cfg.JWT.ExpiryPeriod, "Token lifetime")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:          "catalogctl",
	Short:        "catalogctl manages catalog schemas",
	Long:         `catalogctl creates the catalog tables, applies schema seed files, lists modules and mints admin tokens.`,
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the catalog tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := sql.Open("postgres", dbConnString)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer db.Close()

		m := migration.NewMigrator(db, tablePrefix)
		if err := m.InitializeSchema(cmd.Context()); err != nil {
			return fmt.Errorf("initializing schema: %w", err)
		}

		version, err := m.GetCurrentVersion(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading version: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Catalog tables ready (version %d)\n", version)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed [file]",
	Short: "Apply a YAML schema seed file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		docs, err := seed.Parse(f)
		if err != nil {
			return err
		}

		engine, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}

		for _, doc := range docs {
			svc, err := engine.Scope(doc.ScopeName())
			if err != nil {
				return err
			}
			ctx := audit.WithActor(cmd.Context(), "catalogctl seed "+args[0])
			res, err := seed.Apply(ctx, svc.Schema, doc)
			if err != nil {
				return fmt.Errorf("seeding %s: %w", doc.Scope, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d modules created, %d updated; %d fields created, %d updated\n",
				doc.Scope, res.ModulesCreated, res.ModulesUpdated, res.FieldsCreated, res.FieldsUpdated)
		}
		return nil
	},
}

var modulesCmd = &cobra.Command{
	Use:   "modules [scope]",
	Short: "List the modules of a scope in display order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scope, err := model.ParseScope(args[0])
		if err != nil {
			return err
		}

		engine, err := openEngine(cmd.Context())
		if err != nil {
			return err
		}
		svc, err := engine.Scope(scope)
		if err != nil {
			return err
		}

		modules, err := svc.Schema.ListModules(cmd.Context(), activeOnly)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tID\tNAME\tACTIVE")
		for _, m := range modules {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", m.OrderIndex, m.ID, m.Name, m.IsActive)

			if verbose {
				fields, err := svc.Schema.ListFields(cmd.Context(), m.ID, activeOnly)
				if err != nil {
					return err
				}
				for _, f := range fields {
					fmt.Fprintf(w, "\t  %d\t%s (%s)\t%t\n", f.OrderIndex, f.FieldKey, f.FieldType, f.IsActive)
				}
			}
		}
		return w.Flush()
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [actor]",
	Short: "Mint a bearer token for the admin API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		token, err := auth.NewTokenManager(cfg.JWT.Secret, tokenExpiry).Generate(args[0], tokenRole)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func openEngine(ctx context.Context) (*catalog.Engine, error) {
	db, err := gorm.Open(postgres.Open(dbConnString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	cfg := catalog.NewConfig(ctx, db)
	cfg.SetTablePrefix(tablePrefix)
	cfg.SetAuditLogger(audit.NewDBLogger(repository.NewSchemaAuditLogRepository(db, tablePrefix), nil))
	return catalog.New(cfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
