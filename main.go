package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/web"
)

func main() {
	log.SetPrefix("[PORTFOLIO] ")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	tw, err := content.Load(cfg.ContentPath)
	if err != nil {
		return err
	}
	tw.Timing = tw.Timing.Scaled(cfg.MotionScale())

	st, err := store.Open(ctx, cfg.DatabasePath, nil)
	if err != nil {
		return err
	}
	defer st.Close()

	// Privacy cleanup runs once per start, in the background
	go func() {
		if _, err := st.Prune(ctx, web.PreferenceRetention); err != nil {
			log.Printf("Error cleaning up old preferences: %v", err)
		}
	}()

	srv, err := web.New(web.Deps{
		Page:        content.DefaultPage(),
		Typewriter:  tw,
		Preferences: theme.NewPreferences(st, nil),
		Mailer:      web.NewSMTPMailer(cfg.SMTP),
		Salt:        cfg.HashSalt,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	if err := srv.EnableAdmin(cfg.Admin, st); err != nil {
		return fmt.Errorf("init admin: %w", err)
	}
	if cfg.HashSalt == "" {
		log.Println("Privacy: HASH_SALT not set, visitor preferences reset on restart")
	}

	return srv.ListenAndServe(ctx, ":"+cfg.Port)
}
