package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/lab1702/zappy/server"
	"github.com/lab1702/zappy/zlog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("zappy", flag.ContinueOnError)
	cfg, port, err := server.ParseArgs(fs, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		zlog.Error("failed to listen on port %d: %v", port, err)
		return 1
	}
	defer ln.Close()

	state := server.NewState(cfg)

	zlog.Info("zappy server listening on :%d (%dx%d, teams %v, %g ticks/sec)",
		port, cfg.Width, cfg.Height, cfg.TeamNames, cfg.TickFrequencyHz)

	done := make(chan struct{})
	go server.RunTickLoop(done, state)
	go server.Listen(state, ln)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	zlog.Info("shutting down (signal: %v)", sig)

	close(done)
	ln.Close()

	return 0
}
