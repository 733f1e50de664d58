package cmd

import (
	"fmt"
	"strings"

	"github.com/gintama1018/geminimind/internal/persona"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var personaCmd = &cobra.Command{
	Use:   "persona",
	Short: "Manage content-generation personas",
}

var personaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		personas := s.Personas().List()

		fmt.Printf("%-14s  %-14s  %-12s  %-8s  %s\n", "ID", "Name", "Tone", "Default", "Description")
		fmt.Println(strings.Repeat("─", 90))
		for _, p := range personas {
			def := ""
			if p.IsDefault {
				def = "yes"
			}
			fmt.Printf("%-14s  %-14s  %-12s  %-8s  %s\n", truncate(p.ID, 14), p.Name, p.Tone, def, p.Description)
		}
		return nil
	},
}

var personaShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a persona's full configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		for _, p := range s.Personas().List() {
			if p.ID != args[0] {
				continue
			}
			fmt.Printf("ID:          %s\n", p.ID)
			fmt.Printf("Name:        %s\n", p.Name)
			fmt.Printf("Description: %s\n", p.Description)
			fmt.Printf("Tone:        %s\n", p.Tone)
			fmt.Printf("Expertise:   %s\n", strings.Join(p.ExpertiseAreas, ", "))
			fmt.Printf("Length:      %s\n", p.OutputPreferences.Length)
			fmt.Printf("Format:      %s\n", p.OutputPreferences.Format)
			fmt.Printf("Style:       %s\n", p.OutputPreferences.Style)
			fmt.Printf("Default:     %v\n", p.IsDefault)
			fmt.Printf("\nSystem prompt:\n%s\n", p.SystemPrompt)
			return nil
		}
		return fmt.Errorf("no persona with id %q", args[0])
	},
}

var personaAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a persona",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tone, _ := cmd.Flags().GetString("tone")
		length, _ := cmd.Flags().GetString("length")
		format, _ := cmd.Flags().GetString("format")
		style, _ := cmd.Flags().GetString("style")
		description, _ := cmd.Flags().GetString("description")
		expertise, _ := cmd.Flags().GetStringSlice("expertise")
		system, _ := cmd.Flags().GetString("system")

		if !persona.ValidTone(persona.Tone(tone)) {
			return fmt.Errorf("invalid tone %q (professional, casual, technical, creative, academic)", tone)
		}
		if !persona.ValidLength(persona.Length(length)) {
			return fmt.Errorf("invalid length %q (concise, balanced, detailed)", length)
		}
		if !persona.ValidFormat(persona.Format(format)) {
			return fmt.Errorf("invalid format %q (structured, flowing, bullet-points)", format)
		}
		if system == "" {
			return fmt.Errorf("--system is required: it is the persona's standing instruction")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		p := persona.Persona{
			ID:             uuid.NewString(),
			Name:           args[0],
			Description:    description,
			Tone:           persona.Tone(tone),
			ExpertiseAreas: expertise,
			OutputPreferences: persona.OutputPreferences{
				Length: persona.Length(length),
				Format: persona.Format(format),
				Style:  style,
			},
			SystemPrompt: system,
		}

		s.Personas().Add(p)
		fmt.Printf("Created persona %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

var personaDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a persona",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		if err := s.Personas().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted persona %s (if it existed)\n", args[0])
		return nil
	},
}

var personaResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace all personas with the three built-ins",
	Long:  "Overwrites the persona collection with the built-ins. User-created personas are discarded irreversibly.",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this discards all user-created personas; re-run with --yes to confirm")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer s.Close()

		s.Personas().ResetToDefaults()
		fmt.Println("Personas reset to built-ins.")
		return nil
	},
}

func init() {
	personaAddCmd.Flags().String("description", "", "Short description")
	personaAddCmd.Flags().String("tone", "professional", "Tone (professional, casual, technical, creative, academic)")
	personaAddCmd.Flags().StringSlice("expertise", nil, "Comma-separated expertise areas")
	personaAddCmd.Flags().String("length", "balanced", "Output length (concise, balanced, detailed)")
	personaAddCmd.Flags().String("format", "structured", "Output format (structured, flowing, bullet-points)")
	personaAddCmd.Flags().String("style", "", "Free-text style directive")
	personaAddCmd.Flags().String("system", "", "System prompt (the persona's standing instruction)")

	personaResetCmd.Flags().Bool("yes", false, "Confirm the irreversible reset")

	personaCmd.AddCommand(personaListCmd)
	personaCmd.AddCommand(personaShowCmd)
	personaCmd.AddCommand(personaAddCmd)
	personaCmd.AddCommand(personaDeleteCmd)
	personaCmd.AddCommand(personaResetCmd)
}
