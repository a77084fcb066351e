package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"time"

	"topphysics/bootstrap"
	"topphysics/config"
	"topphysics/database"
	"topphysics/internal/report"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Printf("❌ Error seeding database: %v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	configPath := fs.String("config", config.DefaultFile, "key=value file read before the environment")
	verify := fs.Bool("verify", false, "read the seeded collections back and check them")
	indexes := fs.Bool("indexes", true, "create unique indexes on assistants.id and centers.id")
	quiet := fs.Bool("quiet", false, "only print the final summary")
	timeout := fs.Duration("timeout", 10*time.Second, "connect timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(*configPath)
	var unreadable *config.UnreadableError
	if errors.As(err, &unreadable) {
		log.Printf("⚠️  %v, using environment and defaults", unreadable)
	}

	console := report.NewConsole(stdout)

	connectCtx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := database.ConnectMongo(connectCtx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Printf("⚠️  disconnect: %v", err)
		}
	}()

	var obs bootstrap.Observer = console
	if *quiet {
		obs = nil
	} else {
		console.Connected(cfg.MongoURI, cfg.DBName)
	}

	seeder := bootstrap.NewSeeder(obs)
	db := database.NewHandle(client.Database(cfg.DBName))

	res, err := bootstrap.Run(context.Background(), db, seeder, bootstrap.Options{
		Indexes: *indexes,
		Verify:  *verify,
	})
	if err != nil {
		return err
	}

	console.Summary(res, seeder.Assistants)
	return nil
}
