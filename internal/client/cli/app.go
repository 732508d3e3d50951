// Package cli provides the photokeeper command-line client.
//
// It wires configuration, the local processing pipeline and the upload
// transport into a small one-shot command interface:
//
//	photokeeper upload <file>...   process photos and upload them
//	photokeeper list               list stored photos
//	photokeeper delete <id>        delete a photo by id
//	photokeeper status             show storage backend status
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/photokeeper/internal/client/config"
	"github.com/dmitrijs2005/photokeeper/internal/client/pipeline"
	"github.com/dmitrijs2005/photokeeper/internal/client/transport"
	"github.com/dmitrijs2005/photokeeper/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	client *transport.Client
	intake *pipeline.Intake
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	logger := logging.NewSlogLogger(sl)

	return &App{
		config: c,
		logger: logger,
		client: transport.New(c.ServerURL),
		intake: pipeline.NewIntake(logger),
		out:    os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) error {

	cmd, args := command(os.Args[1:])

	switch cmd {
	case "upload":
		return a.upload(ctx, args)
	case "list":
		return a.list(ctx)
	case "delete":
		return a.delete(ctx, args)
	case "status":
		return a.status(ctx)
	case "", "help":
		a.usage()
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
		a.usage()
		return nil
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: photokeeper [flags] <command>")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  upload <file>...  process photos and upload them")
	fmt.Fprintln(a.out, "  list              list stored photos")
	fmt.Fprintln(a.out, "  delete <id>       delete a photo by id")
	fmt.Fprintln(a.out, "  status            show storage backend status")
	fmt.Fprintln(a.out, "Flags:")
	fmt.Fprintln(a.out, "  -s <url>          server base URL")
	fmt.Fprintln(a.out, "  -c <file>         JSON config file")
}

// valueFlags take a separate value argument and must be skipped in
// pairs when extracting the positional command.
var valueFlags = map[string]bool{
	"-s": true, "-c": true, "-config": true,
}

// command returns the first positional argument and everything after
// it, skipping recognized flags.
func command(args []string) (string, []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if valueFlags[arg] {
			i++
			continue
		}
		if len(arg) > 0 && arg[0] == '-' {
			continue
		}
		return arg, args[i+1:]
	}
	return "", nil
}
