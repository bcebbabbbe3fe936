// Command hauladm runs maintenance tasks against the haul database.
//
//	hauladm seed -file users.yaml
//	hauladm transitions
//	hauladm history -order <id>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"haul/cmd"
	"haul/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const usage = `usage: hauladm <command> [flags]

commands:
  seed -file users.yaml   create users and grant their roles
  transitions             print the order status transition table
  history -order <id>     print the stored events of an order
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := dispatch(context.Background(), os.Args[1], os.Args[2:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func dispatch(ctx context.Context, command string, args []string, out io.Writer) error {
	switch command {
	case "transitions":
		return renderTransitions(out)
	case "seed":
		fs := flag.NewFlagSet("seed", flag.ContinueOnError)
		file := fs.String("file", "users.yaml", "path of the users file")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return withApp(func(app *cmd.CompositionRoot) error {
			return seedFromFile(ctx, app, *file, out)
		})
	case "history":
		fs := flag.NewFlagSet("history", flag.ContinueOnError)
		orderID := fs.String("order", "", "order id")
		if err := fs.Parse(args); err != nil {
			return err
		}
		if *orderID == "" {
			return errors.New("history: -order is required")
		}
		return withApp(func(app *cmd.CompositionRoot) error {
			return printHistory(ctx, app, *orderID, out)
		})
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func withApp(fn func(app *cmd.CompositionRoot) error) error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	configs, err := cmd.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	gormDB, err := postgres.Open(configs.Postgres())
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err = postgres.Migrate(gormDB); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	app, err := cmd.NewCompositionRoot(configs, gormDB, nil, logger)
	if err != nil {
		return err
	}
	return fn(app)
}
