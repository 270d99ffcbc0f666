package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"contactbook/pkg/bootstrap"
	"contactbook/pkg/config"
	"contactbook/pkg/db"
	"contactbook/pkg/server"
	"contactbook/pkg/server/endpoints"
	"contactbook/pkg/server/session"
	"contactbook/pkg/server/store"
	gormstore "contactbook/pkg/server/store/gorm"
	"contactbook/pkg/server/store/remote"
	"contactbook/pkg/server/views"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the Contact Book web server",
	Long: `Run the Contact Book web server.

Requires the DATABASE_URL and CONTACTBOOK_SESSION_KEY environment
variables (the session key may also come from the config file).

By default, database migrations and the administrator seed are run on
startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			p, err := strconv.Atoi(port)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Bad --port value %q\n", port)
				os.Exit(1)
			}
			cfg.Port = p
		}

		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if db.URL() == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Info("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if !noMigrate {
			if err := bootstrap.Seed(database); err != nil {
				fmt.Fprintln(os.Stderr, "Unable to seed database:", err)
				os.Exit(1)
			}
		}

		users := gormstore.NewUserStore(database)

		var contacts store.ContactStore
		switch cfg.ContactBackend {
		case config.BackendAPI:
			contacts = remote.NewContactStore(cfg.ContactAPIBaseURL)
		default:
			contacts = gormstore.NewContactStore(database)
		}
		log.WithField("backend", cfg.ContactBackend).Info("composed contact store")

		renderer, err := views.NewRenderer()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to load templates:", err)
			os.Exit(1)
		}

		sessions := session.NewManager([]byte(cfg.SessionKey), cfg.SessionTTL())

		s := server.NewServer(database, users, contacts, sessions, renderer, cfg.Addr())
		endpoints.RegisterAll(s)

		// Pick up config file edits without a restart. Watch blocks
		// until done closes, so it gets its own goroutine.
		done := make(chan struct{})
		defer close(done)
		go func() {
			if err := config.Watch(done); err != nil {
				log.WithError(err).Warn("config watch unavailable")
			}
		}()

		log.Infof("Running server at http://%s...", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides config)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides config)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations and seeding on start")
}
