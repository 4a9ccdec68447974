package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/meupdi/pdi"
	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/validator"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...pdi.Option) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		usage(stdout)
		return 0
	}
	cmd, ok := lookup(args[0])
	if !ok {
		fmt.Fprintf(stderr, "%s unknown command %q\n\n", errorStyle.Render("error:"), args[0])
		usage(stderr)
		return 2
	}

	app, err := pdi.New(ctx, opts...)
	if err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("error:"), err)
		return 1
	}
	defer app.Close()

	watchCtx, stopWatch := context.WithCancel(ctx)
	sub := app.Subscribe(watchCtx)

	var expired bool
	g, _ := errgroup.WithContext(watchCtx)
	g.Go(func() error {
		for msg := range sub.Receive(watchCtx) {
			app.Logger().DebugContext(ctx, "session event", logger.Event(string(msg.Data.Kind)))
			if msg.Data.Kind == apiclient.SessionExpired {
				expired = true
			}
		}
		return nil
	})

	e := &env{app: app, in: bufio.NewReader(stdin), out: stdout}
	cmdErr := cmd.run(ctx, e, args[1:])
	stopWatch()
	_ = g.Wait()

	if expired {
		fmt.Fprintln(stderr, warnStyle.Render("your session has expired, run: pdi login"))
	}
	return report(stderr, cmd, cmdErr, expired)
}

func report(w io.Writer, cmd command, err error, expired bool) int {
	if err == nil {
		return 0
	}

	var verrs validator.ValidationErrors
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 2
	case errors.Is(err, errUsage):
		fmt.Fprintf(w, "usage: pdi %s %s\n", cmd.name, cmd.args)
		return 2
	case errors.As(err, &verrs):
		for _, v := range verrs {
			fmt.Fprintf(w, "%s %s: %s\n", errorStyle.Render("invalid"), v.Field, v.Message)
		}
	case expired && errors.Is(err, apiclient.ErrRefreshFailed):
		// the session watcher already told the user
	case errors.Is(err, apiclient.ErrTransport):
		fmt.Fprintln(w, errorStyle.Render("error:"), "cannot reach the PDI API")
	case errors.As(err, &apiErr):
		fmt.Fprintln(w, errorStyle.Render("error:"), apiErr.Message)
	default:
		fmt.Fprintln(w, errorStyle.Render("error:"), err)
	}
	return 1
}
