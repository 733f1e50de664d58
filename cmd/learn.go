package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gintama1018/geminimind/internal/document"
	"github.com/gintama1018/geminimind/internal/gateway"
	"github.com/gintama1018/geminimind/internal/session"
	"github.com/spf13/cobra"
)

var learnCmd = &cobra.Command{
	Use:   "learn <document>",
	Short: "Quiz yourself on a document with AI-graded answers",
	Long: "Reads a plain-text document, generates five deep-understanding questions,\n" +
		"collects your free-text answers and grades them against the document.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Load(args[0])
		if err != nil {
			return err
		}

		gw, s, err := buildGateway(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		flow := session.NewLearning(gw)
		ctx := cmd.Context()

		fmt.Printf("Analyzing %s...\n\n", doc.Name)
		if err := flow.LoadDocument(ctx, doc.Name, doc.Text); err != nil {
			return fmt.Errorf("question generation failed: %w", err)
		}

		reader := bufio.NewReader(os.Stdin)
		for _, q := range flow.Questions() {
			fmt.Printf("Question %d [%s / %s]\n%s\n", q.ID, q.Type, q.Difficulty, q.Text)
			fmt.Println("Your answer (finish with an empty line, or leave blank to skip):")

			answer, err := readMultiline(reader)
			if err != nil {
				return err
			}
			if err := flow.Answer(q.ID, answer); err != nil {
				return err
			}
			fmt.Println()
		}

		fmt.Println("Evaluating your answers...")
		if err := flow.Submit(ctx); err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}

		printEvaluation(flow.Questions(), flow.Evaluation())
		return nil
	},
}

// readMultiline reads lines until the first empty one.
func readMultiline(reader *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			// EOF mid-answer: treat what we have as the answer.
			break
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n"), nil
}

func printEvaluation(questions []gateway.Question, result *gateway.EvaluationResult) {
	sep := strings.Repeat("─", 72)

	fmt.Println()
	fmt.Println(sep)
	fmt.Printf("Overall score: %d/100\n", result.OverallScore)
	fmt.Println(sep)
	fmt.Println(result.Summary)

	if len(result.StrengthAreas) > 0 {
		fmt.Println("\nStrengths:")
		for _, a := range result.StrengthAreas {
			fmt.Printf("  + %s\n", a)
		}
	}
	if len(result.ImprovementAreas) > 0 {
		fmt.Println("\nAreas to improve:")
		for _, a := range result.ImprovementAreas {
			fmt.Printf("  - %s\n", a)
		}
	}

	text := make(map[int]string, len(questions))
	for _, q := range questions {
		text[q.ID] = q.Text
	}

	for _, fb := range result.Feedbacks {
		fmt.Println()
		fmt.Println(sep)
		mark := "✗"
		if fb.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s Question %d: %d/100\n", mark, fb.QuestionID, fb.Score)
		if t, ok := text[fb.QuestionID]; ok {
			fmt.Println(t)
		}
		fmt.Println()
		fmt.Println(fb.Feedback)
		if len(fb.KeyInsightsMissed) > 0 {
			fmt.Println("\nKey insights missed:")
			for _, k := range fb.KeyInsightsMissed {
				fmt.Printf("  • %s\n", k)
			}
		}
		if fb.SuggestedImprovement != "" {
			fmt.Printf("\nSuggestion: %s\n", fb.SuggestedImprovement)
		}
	}
}
