package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"paju/config"
	"paju/jobs"
	"paju/repository"
	"paju/routes"
	"paju/services"
)

// @title        Paju restaurant API
// @version      1.0
// @description  Public site and CMS API for the Paju restaurant website.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>". Browser clients send the auth-token cookie instead.
func main() {
	app := &cli.App{
		Name:  "paju",
		Usage: "restaurant website backend",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file", EnvVars: []string{"CONFIG_PATH"}},
		},
		Action: serve,
		Commands: []*cli.Command{
			{Name: "serve", Usage: "run the HTTP server", Action: serve},
			{Name: "migrate", Usage: "create or update database tables", Action: migrate},
			{Name: "seed", Usage: "insert default hours, menu and users into empty tables", Action: seed},
			{Name: "migrate-uploads", Usage: "move menu images from the local uploads dir to the configured image storage", Action: migrateUploads},
			{Name: "hash-password", Usage: "print the bcrypt hash of a password", ArgsUsage: "<password>", Action: hashPassword},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := config.InitApp(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer app.Close()

	// memory store mất dữ liệu mỗi lần khởi động
	if app.Store.Backend == "memory" {
		if _, err := app.Seeder.Seed(ctx); err != nil {
			return err
		}
	}

	if err := jobs.InitCronJobs(app.Cron, cfg.Jobs.AnnouncementRefresh, app.Announcements, log); err != nil {
		return fmt.Errorf("failed to initialize cron jobs: %w", err)
	}

	router := app.Router()
	routes.SetupRoutes(router, app)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting on port %s (%s)", cfg.Port, cfg.Env)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}

func migrate(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}
	if db == nil {
		fmt.Println("memory store: nothing to migrate")
		return nil
	}
	if err := repository.Migrate(db); err != nil {
		return err
	}
	fmt.Printf("migrated %s database\n", cfg.Database.Driver)
	return nil
}

func seed(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	store, err := config.OpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := services.NewSeeder(store, log, services.SeedOptions{
		AdminPassword:  cfg.Auth.AdminPass,
		EditorPassword: cfg.Auth.EditorPass,
	}).Seed(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("seeded hours=%d categories=%d items=%d statuses=%d users=%d\n",
		report.Hours, report.Categories, report.Items, report.Statuses, report.Users)
	return nil
}

func migrateUploads(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		return err
	}
	app, err := config.InitApp(c.Context, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}
	defer app.Close()

	source, err := app.UploadSource()
	if err != nil {
		return err
	}
	report, err := app.Menu.MigrateLocalImages(c.Context, source)
	if err != nil {
		return err
	}
	for _, r := range report.Results {
		fmt.Printf("item %d %-8s %s -> %s %s\n", r.ID, r.Status, r.From, r.To, r.Reason)
	}
	fmt.Printf("checked=%d toMigrate=%d migrated=%d\n", report.Checked, report.ToMigrate, report.Migrated)
	return nil
}

func hashPassword(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: paju hash-password <password>", 2)
	}
	hash, err := services.HashPassword(c.Args().First())
	if err != nil {
		return err
	}
	fmt.Println(hash)
	return nil
}
