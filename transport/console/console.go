package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

var errBadInput = errors.New("expected row and column as two numbers")

type gameManager interface {
	NewGame(ctx context.Context, first, second entity.Player) (*usecase.Game, error)
	MakeTurn(ctx context.Context, id string, row, col int) (*usecase.Game, tictactoe.Outcome, error)
	Abandon(ctx context.Context, id string) error
}

// Console plays one game at a time over a line based reader and writer.
type Console struct {
	logger  *slog.Logger
	manager gameManager
	in      *bufio.Scanner
	out     io.Writer
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Console {
	return &Console{
		logger:  logger.With("component", "console"),
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run plays a game until it is won, tied, the input ends or ctx is cancelled.
// An unfinished game is abandoned. Input ending is not an error.
func (that *Console) Run(ctx context.Context, first, second entity.Player) error {
	game, err := that.manager.NewGame(ctx, first, second)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	log := that.logger.With("gameID", game.ID)
	log.Info("game started")

	if err = Render(that.out, game.Snapshot); err != nil {
		return err
	}

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()

	lines := that.readLines(readCtx)

	for {
		if err = ctx.Err(); err != nil {
			that.abandon(ctx, log, game.ID)
			return err
		}

		that.printf("%s input row and column:\n", game.Active)

		row, col, err := readMove(ctx, lines)
		if errors.Is(err, io.EOF) {
			that.abandon(ctx, log, game.ID)
			return nil
		}

		if errors.Is(err, errBadInput) {
			that.printf("Invalid move, try again: %s\n", err)
			continue
		}

		if err != nil && ctx.Err() == nil {
			return err
		}

		// a line may arrive together with the cancellation
		if err = ctx.Err(); err != nil {
			that.abandon(ctx, log, game.ID)
			return err
		}

		next, outcome, err := that.manager.MakeTurn(ctx, game.ID, row, col)
		if reason, ok := rejection(err); ok {
			that.printf("Invalid move, try again: %s\n", reason)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to make turn: %w", err)
		}

		if err = Render(that.out, next.Snapshot); err != nil {
			return err
		}

		switch outcome {
		case tictactoe.Win:
			that.printf("%s has won the game!\n", game.Active.Name())
			return nil
		case tictactoe.Tie:
			that.printf("Game is tied\n")
			return nil
		case tictactoe.Continue:
			game = next
		}
	}
}

type line struct {
	text string
	err  error
}

// readLines scans the input in the background so a blocked read never holds up
// cancellation. The last value carries io.EOF or the scan error.
func (that *Console) readLines(ctx context.Context) <-chan line {
	lines := make(chan line)

	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- line{text: that.in.Text()}:
			case <-ctx.Done():
				return
			}
		}

		last := line{err: io.EOF}
		if err := that.in.Err(); err != nil {
			last.err = fmt.Errorf("failed to read input: %w", err)
		}

		select {
		case lines <- last:
		case <-ctx.Done():
		}
	}()

	return lines
}

func readMove(ctx context.Context, lines <-chan line) (int, int, error) {
	var next line

	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case received, ok := <-lines:
		if !ok {
			return 0, 0, io.EOF
		}
		next = received
	}

	if next.err != nil {
		return 0, 0, next.err
	}

	fields := strings.Fields(next.text)
	if len(fields) != 2 {
		return 0, 0, errBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errBadInput
	}

	return row, col, nil
}

func (that *Console) abandon(ctx context.Context, log *slog.Logger, id string) {
	if err := that.manager.Abandon(context.WithoutCancel(ctx), id); err != nil {
		log.Error("failed to abandon game", "error", err)
		return
	}

	that.printf("Game abandoned\n")
}

func (that *Console) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// rejection reports whether err is a move the player may retry.
func rejection(err error) (string, bool) {
	for _, target := range []error{apperror.ErrOutOfBounds, apperror.ErrCellOccupied, apperror.ErrGameNotInProgress} {
		if errors.Is(err, target) {
			return target.Error(), true
		}
	}

	return "", false
}
