// Copyright 2025 The Idra Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The summarizer-agent process serves the Idra agent protocol on an
// ephemeral loopback port and announces that port to the orchestrator by
// printing AGENT_PORT=<port> to stdout, the only thing ever written there.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/idra-project/agent-go/agentgrpc"
	"github.com/idra-project/agent-go/agentsrv"
	"github.com/idra-project/agent-go/internal/config"
	"github.com/idra-project/agent-go/internal/logging"
)

var envFile = flag.String("config", ".env", "Path to an optional .env configuration file.")

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogFile, cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("agent exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("bind %s: %w", cfg.Addr, err)
	}

	srv := agentgrpc.NewServer(agentsrv.NewSummarizer(cfg.Name), cfg.MaxWorkers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("agent serving", "name", cfg.Name, "addr", lis.Addr().String())
		return srv.Serve(lis)
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdown(srv, cfg.GracePeriod)
		return nil
	})

	// Handshake: the orchestrator discovers the bound port by reading this
	// exact line. The listener is already accepting, so the orchestrator
	// may connect as soon as it sees it.
	fmt.Printf("AGENT_PORT=%d\n", lis.Addr().(*net.TCPAddr).Port)

	return g.Wait()
}

// shutdown stops accepting new calls and gives in-flight calls up to grace
// to finish before terminating them.
func shutdown(srv *grpc.Server, grace time.Duration) {
	slog.Info("shutting down", "grace", grace)
	done := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(grace):
		slog.Warn("grace period elapsed, stopping hard")
		srv.Stop()
	}
}
