package cmd

import (
	"fmt"
	"os"

	"github.com/gintama1018/geminimind/internal/gateway"
	"github.com/gintama1018/geminimind/internal/llm"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set [key]",
	Short: "Validate and store an API key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		cfg := llm.ConfigFromEnv()
		ctx := cmd.Context()

		var key string
		if len(args) == 1 {
			key = args[0]
			fmt.Println("Validating...")
			ok, reason := gateway.ValidateCredential(ctx, cfg.WithCredential(key))
			if !ok {
				return fmt.Errorf("key rejected: %s", reason)
			}
		} else {
			key, err = promptForKey(ctx, cfg)
			if err != nil {
				return err
			}
		}

		s.Credentials().Save(key)
		fmt.Println("API key validated and stored.")
		return nil
	},
}

var keyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the active API key comes from",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		_, stored := s.Credentials().Load()

		switch {
		case os.Getenv("GEMINIMIND_API_KEY") != "":
			fmt.Println("Active key: environment (GEMINIMIND_API_KEY). Stored key, if any, is ignored.")
		case llm.ConfigFromEnv().APIKey != "":
			fmt.Println("Active key: environment (provider API key variable). Stored key, if any, is ignored.")
		case stored:
			fmt.Println("Active key: stored locally.")
		default:
			fmt.Println("No API key configured. Run: geminimind key set")
		}
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		s.Credentials().Clear()
		fmt.Println("Stored API key removed.")
		return nil
	},
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyStatusCmd)
	keyCmd.AddCommand(keyClearCmd)
}
