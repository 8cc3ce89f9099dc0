package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	tex2gfm "github.com/alnah/go-tex2gfm"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := DefaultEnv()
	if err := run(ctx, os.Args[1:], env, tex2gfm.New()); err != nil {
		fmt.Fprintln(env.Stderr, "tex2gfm:", err)
		os.Exit(exitCodeFor(err))
	}
}
