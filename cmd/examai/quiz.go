package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/examai/internal/exam"
	"github.com/saulo-duarte/examai/internal/quizclient"
	"github.com/saulo-duarte/examai/internal/terminal"
)

func newQuizCommand() *cobra.Command {
	form := quizclient.DefaultForm()
	var difficulty string

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take an exam in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}

			form.Topic = strings.TrimSpace(form.Topic)
			form.Difficulty = exam.Difficulty(difficulty)

			validator, err := quizclient.NewFormValidator()
			if err != nil {
				return err
			}
			if messages := validator.Validate(form); len(messages) > 0 {
				return errors.New(strings.Join(messages, "; "))
			}

			client := quizclient.NewClient(settings.Client.APIBaseURL)
			defer client.Close()

			return terminal.NewQuizCLI(client, os.Stdin, os.Stdout).Run(cmd.Context(), form)
		},
	}

	cmd.Flags().StringVarP(&form.Topic, "topic", "t", "", "exam topic")
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(form.Difficulty), "Easy, Medium or Hard")
	cmd.Flags().IntVarP(&form.NumberOfQuestions, "questions", "n", form.NumberOfQuestions, "number of questions (1-20)")
	return cmd
}
