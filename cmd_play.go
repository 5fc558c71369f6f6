package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/solver"
)

const playHelp = `Play the suggested word on your board, then type the tiles you got back:
  g or +  correct    y or ~  present    b, - or .  absent
e.g. "gbbyg". If you played a different word, type "<word> <pattern>".
"top" lists the best remaining words, "quit" stops.`

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Solve interactively against a board you play yourself",
		Long:  playHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.newSession()
			if err != nil {
				return err
			}
			return play(sess, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

var errQuit = errors.New("quit")

// play drives sess from pattern lines read from in until the session ends.
func play(sess *solver.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		guess, ok := sess.NextGuess()
		if !ok {
			break
		}
		fmt.Fprintf(out, "round %d: play %q (%d candidates)\n", sess.Rounds()+1, guess, sess.CandidateCount())

		round, err := readRound(sc, out, sess, guess)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := sess.SubmitFeedback(round); err != nil {
			// conflicting feedback leaves the session as it was; ask again
			fmt.Fprintf(out, "rejected: %v\n", err)
			continue
		}
	}

	switch sess.State() {
	case solver.StateSolved:
		fmt.Fprintf(out, "solved in %d\n", sess.Rounds())
	case solver.StateExhausted:
		fmt.Fprintf(out, "out of rounds, %d candidates left\n", sess.CandidateCount())
	case solver.StateContradiction:
		fmt.Fprintln(out, "no word in the list matches that feedback")
	}
	return nil
}

func readRound(sc *bufio.Scanner, out io.Writer, sess *solver.Session, guess string) (solver.Round, error) {
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return solver.Round{}, err
			}
			return solver.Round{}, io.ErrUnexpectedEOF
		}
		fields := strings.Fields(sc.Text())
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == "quit" || fields[0] == "q":
			return solver.Round{}, errQuit
		case fields[0] == "top":
			for _, r := range sess.Suggestions(5) {
				fmt.Fprintf(out, "  %s %.2f\n", r.Word, r.Score)
			}
			continue
		}

		word, pattern := guess, fields[0]
		if len(fields) == 2 {
			word, pattern = fields[0], fields[1]
		}
		round, err := solver.ParsePattern(word, pattern)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return round, nil
	}
}
