package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gemgeek/alx-listing-app-deployed/internal/apiclient"
	"github.com/gemgeek/alx-listing-app-deployed/internal/config"
)

const usage = `usage: staybook-cli <command> [flags]

commands:
  list                 list all properties
  show -id <id>        show one property and its reviews
  book -first <name> -last <name> -email <addr> [payment flags]
                       submit a booking

API_BASE_URL and API_TIMEOUT select the server.
`

var errPageFailed = errors.New("page failed to load")

func main() {
	cfg := config.MustLoadClient()
	client := apiclient.New(cfg.BaseURL, cfg.Timeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, client, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, client *apiclient.Client, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "list":
		err = listPage(ctx, client, stdout)
	case "show":
		err = showPage(ctx, client, args[1:], stdout, stderr)
	case "book":
		err = bookPage(ctx, client, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}
