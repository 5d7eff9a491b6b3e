package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/saulo-duarte/examai/internal/quizclient"
)

var errQuit = errors.New("quit")

// QuizCLI walks an exam card by card in a terminal.
type QuizCLI struct {
	api    quizclient.ExamAPI
	reader *bufio.Reader
	writer io.Writer
	bold   *color.Color
	green  *color.Color
	red    *color.Color
	faint  *color.Color
	italic *color.Color
}

func NewQuizCLI(api quizclient.ExamAPI, in io.Reader, out io.Writer) *QuizCLI {
	return &QuizCLI{
		api:    api,
		reader: bufio.NewReader(in),
		writer: out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen, color.Bold),
		red:    color.New(color.FgRed, color.Bold),
		faint:  color.New(color.Faint),
		italic: color.New(color.Italic),
	}
}

func (cli *QuizCLI) Run(ctx context.Context, form quizclient.Form) error {
	session := quizclient.NewSession()

	fmt.Fprintln(cli.writer, "Generating...")
	if err := session.Submit(ctx, cli.api, form); err != nil {
		cli.red.Fprintln(cli.writer, quizclient.GenerateFailedMessage)
		return err
	}

	view := session.View()
	cli.bold.Fprintf(cli.writer, "\n%s Exam\n", view.Exam.Topic)
	fmt.Fprintln(cli.writer, "Answer with the option number. Type 'q' to quit.")

	for i := range view.Cards {
		if err := cli.askCard(session, i); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				fmt.Fprintln(cli.writer, "Bye!")
				return nil
			}
			return err
		}
	}
	return nil
}

func (cli *QuizCLI) askCard(session *quizclient.Session, index int) error {
	card := session.View().Cards[index]

	fmt.Fprintln(cli.writer)
	cli.bold.Fprintf(cli.writer, "%d. %s\n", index+1, card.Question.Text)
	for i, option := range card.Question.Options {
		fmt.Fprintf(cli.writer, "  %d) %s\n", i+1, option)
	}

	for {
		fmt.Fprint(cli.writer, "> ")
		line, err := cli.reader.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && input == "" {
			return err
		}
		if strings.EqualFold(input, "q") {
			return errQuit
		}

		choice, convErr := strconv.Atoi(input)
		if convErr == nil {
			if _, answerErr := session.Answer(index, choice-1); answerErr == nil {
				break
			}
		}
		fmt.Fprintf(cli.writer, "Please enter a number between 1 and %d.\n", len(card.Question.Options))
		if err != nil {
			return err
		}
	}

	cli.reveal(session.View().Cards[index])
	return nil
}

func (cli *QuizCLI) reveal(card *quizclient.Card) {
	for i, option := range card.Question.Options {
		line := fmt.Sprintf("  %d) %s", i+1, option)
		switch card.Style(option) {
		case quizclient.OptionCorrect:
			cli.green.Fprintln(cli.writer, line+"  ✓")
		case quizclient.OptionIncorrect:
			cli.red.Fprintln(cli.writer, line+"  ✗")
		default:
			cli.faint.Fprintln(cli.writer, line)
		}
	}

	if explanation, ok := card.Explanation(); ok {
		cli.italic.Fprintf(cli.writer, "Explanation: %s\n", explanation)
	}
}
