package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"planter/advisor"
	"planter/communication"
	"planter/communication/client"
	"planter/engine"
	"planter/game"
	"planter/meta"
	"planter/render"

	"github.com/spf13/cobra"
)

const playHelp = `commands:
  rec                      rank the moves for your pick
  me <role> [res|bld]      record your pick
  opp <role> [res|bld]     record the opponent's pick
  ok <n>                   affirm the n-th recommendation and play it
  round <res,...>          start the next round with a new face-up row
  board                    show both boards
  prefs                    show affirmed moves
  reset [you|opponent]     start over, optionally naming the first player
  help                     show this help
  quit                     leave`

func newPlayCmd(a *app) *cobra.Command {
	var (
		faceUp string
		remote string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Track a game interactively and ask for advice",
		Long:  "play reads one command per line from stdin, keeps both boards up to date and ranks your options on request.\n\n" + playHelp,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b backend
			if remote != "" {
				if faceUp != "" {
					return errors.New("--face-up cannot be combined with --remote, use the round command")
				}
				b = remoteBackend{ctx: cmd.Context(), client: client.NewClient(remote), cat: game.StandardCatalog()}
				if err := b.reset(a.settings.FirstPlayer); err != nil {
					return err
				}
			} else {
				b = localBackend{session: engine.NewSession(a.sessionOptions(
					engine.WithHolder(a.settings.FirstPlayer),
					engine.WithFaceUp(communication.ParseResources(faceUp)...),
				)...)}
			}
			r := &repl{backend: b, out: cmd.OutOrStdout(), count: a.settings.Count}
			return r.run(cmd.InOrStdin())
		},
	}
	cmd.Flags().String("first", meta.DefaultFirstPlayer, "who holds first player: you or opponent")
	cmd.Flags().StringVar(&faceUp, "face-up", "", "opening face-up row, comma separated")
	cmd.Flags().Int("count", meta.DefaultCount, "number of moves to show, 0 for all")
	cmd.Flags().StringVar(&remote, "remote", "", "drive the session of a running server at this URL")
	return cmd
}

type repl struct {
	backend backend
	out     io.Writer
	count   int
	last    []advisor.Candidate
}

func (r *repl) run(in io.Reader) error {
	fmt.Fprintln(r.out, "type help for commands")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if quit, err := r.exec(strings.ToLower(words[0]), words[1:]); quit {
			return nil
		} else if err != nil {
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *repl) exec(verb string, args []string) (bool, error) {
	switch verb {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		fmt.Fprintln(r.out, playHelp)
	case "rec", "r":
		return false, r.recommend()
	case "me", "opp":
		p := game.You
		if verb == "opp" {
			p = game.Opponent
		}
		if len(args) == 0 {
			return false, fmt.Errorf("usage: %s <role> [resource|building]", verb)
		}
		return false, r.apply(p, moveCommand(args))
	case "ok":
		return false, r.affirm(args)
	case "round":
		row := communication.ParseResources(strings.Join(args, ","))
		if err := r.backend.round(row); err != nil {
			return false, err
		}
		r.last = nil
		return false, r.board()
	case "board", "b":
		return false, r.board()
	case "prefs":
		entries, err := r.backend.preferences()
		if err != nil {
			return false, err
		}
		fmt.Fprintln(r.out, render.Preferences(entries))
	case "reset":
		holder := game.You
		if len(args) > 0 {
			var err error
			if holder, err = game.ParsePlayer(args[0]); err != nil {
				return false, err
			}
		}
		if err := r.backend.reset(holder); err != nil {
			return false, err
		}
		r.last = nil
		fmt.Fprintf(r.out, "session reset, %s picks first\n", holder)
	default:
		return false, fmt.Errorf("unknown command %q, type help", verb)
	}
	return false, nil
}

// moveCommand reads "<role> [resource|building]". Building names may span
// several words.
func moveCommand(args []string) communication.MoveCommand {
	cmd := communication.MoveCommand{Role: args[0]}
	rest := strings.Join(args[1:], " ")
	switch game.ParseRole(args[0]) {
	case game.Settler:
		cmd.Resource = rest
	case game.Builder:
		cmd.Building = rest
	}
	return cmd
}

func (r *repl) recommend() error {
	candidates, err := r.backend.recommend()
	if err != nil {
		return err
	}
	r.last = advisor.Limit(candidates, r.count)
	fmt.Fprintln(r.out, render.Candidates(r.last))
	return nil
}

func (r *repl) apply(p game.Player, cmd communication.MoveCommand) error {
	applied, err := r.backend.apply(p, cmd)
	if err != nil {
		return err
	}
	if !applied {
		fmt.Fprintln(r.out, "ignored: the move is missing its resource or building")
		return nil
	}
	r.last = nil
	return r.status()
}

func (r *repl) affirm(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ok <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(r.last) {
		return fmt.Errorf("pick a number between 1 and %d from the last rec", len(r.last))
	}
	c := r.last[n-1]
	cmd := communication.CommandFor(c.Move)
	count, err := r.backend.affirm(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "affirmed %s (%d)\n", c.Title, count)
	return r.apply(game.You, cmd)
}

func (r *repl) status() error {
	s, err := r.backend.state()
	if err != nil {
		return err
	}
	if s.Turn.Complete() {
		fmt.Fprintf(r.out, "round %d complete, start the next with round <res,...>\n", s.Turn.Round)
		return nil
	}
	fmt.Fprintf(r.out, "turn %d: %s to pick\n", s.Turn.TurnInRound, s.ActingPlayer())
	return nil
}

func (r *repl) board() error {
	s, err := r.backend.state()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, render.State(s))
	return nil
}
