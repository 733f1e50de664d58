package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gintama1018/geminimind/internal/gateway"
	"github.com/gintama1018/geminimind/internal/llm"
	"github.com/gintama1018/geminimind/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "geminimind",
	Short: "Document quizzing and persona content generation",
	Long: "GeminiMind turns a document into a deep-understanding quiz with AI-graded\n" +
		"free-text answers, or generate content in the voice of a configurable persona.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GEMINIMIND_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(personaCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GEMINIMIND_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the on-disk store, degrading to an in-memory database
// for the session when the disk one is unavailable.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		if s, openErr := store.Open(dbPath); openErr == nil {
			return s, nil
		} else {
			err = openErr
		}
	}

	fmt.Fprintf(os.Stderr, "warning: local storage unavailable (%v); changes will not persist\n", err)
	return store.OpenMemory()
}

// resolveCredential activates a credential in precedence order:
// environment (never persisted), then the stored value, then an
// interactive prompt whose entry is validated, persisted and activated.
func resolveCredential(ctx context.Context, cfg llm.Config, creds *store.CredentialRepo) (llm.Config, error) {
	if cfg.APIKey != "" {
		// Environment-provided. Takes precedence, never written back.
		return cfg, nil
	}

	if stored, ok := creds.Load(); ok {
		return cfg.WithCredential(stored), nil
	}

	entered, err := promptForKey(ctx, cfg)
	if err != nil {
		return cfg, err
	}
	creds.Save(entered)
	return cfg.WithCredential(entered), nil
}

func promptForKey(ctx context.Context, cfg llm.Config) (string, error) {
	fmt.Printf("No API key configured for the %s provider.\n", cfg.Provider)
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("Enter API key: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read API key: %w", err)
		}
		key := strings.TrimSpace(line)
		if key == "" {
			continue
		}

		fmt.Println("Validating...")
		ok, reason := gateway.ValidateCredential(ctx, cfg.WithCredential(key))
		if ok {
			return key, nil
		}
		fmt.Printf("Key rejected: %s\n", reason)
	}
}

// buildGateway wires store, credential, provider and gateway together.
func buildGateway(cmd *cobra.Command) (*gateway.Gateway, *store.Store, error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	ctx := cmd.Context()
	cfg, err := resolveCredential(ctx, llm.ConfigFromEnv(), s.Credentials())
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		s.Close()
		return nil, nil, err
	}

	provider, err := llm.NewProvider(ctx, cfg, s.Events())
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	return gateway.New(provider, gateway.WithTimeout(cfg.Timeout)), s, nil
}
