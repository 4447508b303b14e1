// cmd/taskctl/main.go
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/model"
)

const version = "0.3.0"

var (
	dbConnString   string
	migrationsPath string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", os.Getenv("DATABASE_URL"), "Database connection string")

	migrateCmd.Flags().StringVarP(&migrationsPath, "path", "p", "migrations", "Path to migration files")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "taskctl",
	Short: "taskctl manages the taskboard database",
	Long:  `taskctl runs schema migrations and seeds the first administrator account.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply database migrations",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		direction := "up"
		if len(args) == 1 {
			direction = args[0]
		}

		db, err := sql.Open("postgres", dbConnString)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()

		driver, err := postgres.WithInstance(db, &postgres.Config{})
		if err != nil {
			log.Fatalf("Failed to create migration driver: %v", err)
		}

		m, err := migrate.NewWithDatabaseInstance(
			fmt.Sprintf("file://%s", migrationsPath),
			"postgres",
			driver,
		)
		if err != nil {
			log.Fatalf("Failed to create migrate instance: %v", err)
		}

		switch direction {
		case "up":
			err = m.Up()
		case "down":
			err = m.Steps(-1)
		default:
			log.Fatalf("Unknown direction %q (want up or down)", direction)
		}

		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Migrations applied")
	},
}

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin [name] [email] [pin]",
	Short: "Create an administrator with a PIN",
	Long:  `Creates the first admin account so someone can log in and provision everyone else.`,
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		name, email, pin := args[0], args[1], args[2]
		if len(pin) < 4 {
			log.Fatal("PIN must be at least 4 characters")
		}

		db, err := gorm.Open(gormpg.Open(dbConnString), &gorm.Config{
			NowFunc: func() time.Time { return time.Now().UTC() },
		})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		pinHash, err := auth.NewPINHasher().Hash(pin)
		if err != nil {
			log.Fatalf("Failed to hash PIN: %v", err)
		}

		user := &model.User{
			Name:    name,
			Email:   email,
			Role:    model.RoleAdmin,
			PINHash: pinHash,
		}

		if err := db.Create(user).Error; err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}

		fmt.Printf("Created admin %s (%s)\n", user.Name, user.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskctl version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
