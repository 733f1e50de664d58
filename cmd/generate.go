package cmd

import (
	"fmt"
	"strings"

	"github.com/gintama1018/geminimind/internal/session"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate content in the voice of a persona",
	Long: "Generates persona-styled content for a prompt. Content types:\n" +
		contentTypeHelp(),
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		personaID, _ := cmd.Flags().GetString("persona")
		contentType, _ := cmd.Flags().GetString("type")
		prompt := strings.Join(args, " ")

		gw, s, err := buildGateway(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		flow := session.NewContent(gw, s.Personas())
		if err := flow.Select(personaID); err != nil {
			return fmt.Errorf("%w (run: geminimind persona list)", err)
		}

		output, err := flow.Generate(cmd.Context(), contentType, prompt)
		if err != nil {
			return fmt.Errorf("content generation failed: %w", err)
		}

		fmt.Println(output)
		return nil
	},
}

func contentTypeHelp() string {
	var b strings.Builder
	for _, ct := range session.ContentTypes {
		fmt.Fprintf(&b, "  %-14s %s: %s\n", ct.ID, ct.Name, ct.Description)
	}
	return b.String()
}

func init() {
	generateCmd.Flags().StringP("persona", "p", "codemaster", "Persona id to generate with")
	generateCmd.Flags().StringP("type", "t", "code", "Content type (code, marketing, documentation, creative)")
}
