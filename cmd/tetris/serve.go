package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	tetrisgame "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tetris SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game with the start screen menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Examples:
  tetris serve                           # Listen on :23234 with auto-generated key
  tetris serve --ssh :2222               # Listen on port 2222
  tetris serve --host-key ./my_host_key  # Use specific host key
  tetris serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port, default from TETRIS_SSH_ADDR)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("ssh") && env.SSHAddr != "" {
		flagSSHAddr = env.SSHAddr
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rate := flagFPS
	if rate <= 0 {
		rate = cfg.TickRate()
	}

	sc := tui.DefaultSSHServerConfig()
	sc.Address = flagSSHAddr
	sc.HostKeyPath = flagHostKey
	sc.DBPath = flagDBPath
	sc.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sc.GameID = tetrisgame.GameID
	sc.TickRate = rate
	sc.Difficulty = flagDifficulty
	sc.Logger = logger

	server, err := tui.NewSSHServer(sc)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Tetris SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")

	// Blocks until interrupted
	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
