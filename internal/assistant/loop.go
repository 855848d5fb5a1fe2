package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Run drives the read-dispatch-print loop until the user exits, the input
// stream ends, or the context is cancelled. Core errors are already
// rendered as reply strings by Dispatch, so the loop itself never dies on
// bad input.
func Run(ctx context.Context, in io.Reader, out io.Writer, h *Handler) error {
	slog.Info(config.MsgLoopStarted, config.LogKeyComponent, config.CompAssistant)
	defer slog.Info(config.MsgLoopStopped, config.LogKeyComponent, config.CompAssistant)

	fmt.Fprintln(out, h.messages.Get(config.TKeyWelcome))

	scanner := bufio.NewScanner(in)
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, h.messages.Get(config.TKeyGoodbye))
			return nil
		default:
		}

		fmt.Fprint(out, config.Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			// EOF: treat like an explicit exit.
			fmt.Fprintln(out, h.messages.Get(config.TKeyGoodbye))
			return nil
		}

		command, args := ParseInput(scanner.Text())
		if command == "" {
			continue
		}

		reply, quit := h.Dispatch(command, args)
		fmt.Fprintln(out, reply)
		if quit {
			return nil
		}
	}
}
