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

// Package config loads agent process settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/idra-project/agent-go/agentsrv"
)

// Config holds the agent process settings.
type Config struct {
	// Name is reported by health probes.
	Name string
	// Addr is the listen address. Port 0 requests an ephemeral port, which
	// the process reports through the AGENT_PORT handshake line.
	Addr string
	// MaxWorkers bounds the number of calls handled in parallel.
	MaxWorkers uint32
	// GracePeriod bounds how long in-flight calls may run after an
	// interrupt before the server is stopped hard.
	GracePeriod time.Duration
	// LogFile, when set, routes logs to a rotated file instead of stderr.
	LogFile  string
	LogLevel slog.Level
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Name:        agentsrv.DefaultAgentName,
		Addr:        "127.0.0.1:0",
		MaxWorkers:  4,
		GracePeriod: 5 * time.Second,
		LogLevel:    slog.LevelInfo,
	}
}

// Load builds a Config from defaults, the .env file at envFile (skipped if
// absent or empty path), and AGENT_* environment variables, in that order.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	cfg := Default()
	if v := os.Getenv("AGENT_NAME"); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv("AGENT_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("AGENT_MAX_WORKERS"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil || n == 0 {
			return Config{}, fmt.Errorf("AGENT_MAX_WORKERS: %q is not a positive integer", v)
		}
		cfg.MaxWorkers = uint32(n)
	}
	if v := os.Getenv("AGENT_GRACE_PERIOD_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms < 0 {
			return Config{}, fmt.Errorf("AGENT_GRACE_PERIOD_MS: %q is not a non-negative integer", v)
		}
		cfg.GracePeriod = time.Duration(ms) * time.Millisecond
	}
	if v := os.Getenv("AGENT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("AGENT_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("AGENT_LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}
