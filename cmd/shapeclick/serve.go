package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shapeclick/internal/config"
	"github.com/vovakirdan/shapeclick/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quiz SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own quiz session. Every session uses the
config resolved from --config and --difficulty at startup.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.shapeclick/host_key

Examples:
  shapeclick serve                           # Listen on :23234 with auto-generated key
  shapeclick serve --ssh :2222               # Listen on port 2222
  shapeclick serve --difficulty hard         # Everyone plays hard mode

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", defaults.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

// sshServerConfig layers the serve flags over the server defaults.
func sshServerConfig(quizCfg config.QuizConfig, logger *log.Logger) tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	if flagSSHAddr != "" {
		cfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	cfg.Quiz = quizCfg
	cfg.Seed = flagSeed
	cfg.Logger = logger
	return cfg
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serve() error {
	quizCfg, err := loadQuizConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on shutdown
	defer closeLog()

	server, err := tui.NewSSHServer(sshServerConfig(quizCfg, logger.WithPrefix("shapeclick-ssh")))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting shapeclick SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
