package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"phoenixgrc/riskmatrix/internal/models"

	"github.com/urfave/cli/v3"
)

func (a *app) cmdInteractive() *cli.Command {
	return &cli.Command{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Toggle controls one by one and watch the matrix change",
		Action: func(ctx context.Context, c *cli.Command) error {
			return a.interactive(ctx, c.Root().Reader, c.Root().Writer)
		},
	}
}

// interactive lê comandos linha a linha: número alterna um controle, "c" limpa, "q" ou EOF sai.
// Cada alteração recalcula a avaliação inteira. Cancelamento (Ctrl-C) encerra a sessão normalmente.
func (a *app) interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	ids := a.catalog.IDs()
	selection := models.NewSelection()

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(out)
			return nil
		}
		if err := a.writeMenu(out, ids, selection); err != nil {
			return err
		}
		if err := a.render(out, selection); err != nil {
			return err
		}
		fmt.Fprint(out, "\nToggle control number (c = clear, q = quit): ")

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("failed to read input: %w", readErr)
		}
		input := strings.ToLower(strings.TrimSpace(line))

		switch input {
		case "q", "quit", "exit":
			fmt.Fprintln(out)
			return nil
		case "c", "clear":
			selection = models.NewSelection()
		case "":
		default:
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > len(ids) {
				fmt.Fprintf(out, "\nInvalid option %q\n", input)
				break
			}
			id := ids[n-1]
			if selection.Has(id) {
				delete(selection, id)
			} else {
				selection[id] = struct{}{}
			}
		}

		if errors.Is(readErr, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

func (a *app) writeMenu(out io.Writer, ids []models.ControlID, selection models.Selection) error {
	var b strings.Builder
	b.WriteString("\n--- Controls ---\n")
	for i, id := range ids {
		ctrl, _ := a.catalog.Get(id)
		mark := " "
		if selection.Has(id) {
			mark = "x"
		}
		fmt.Fprintf(&b, "%2d [%s] %s (%s)\n", i+1, mark, ctrl.Name, ctrl.ID)
	}
	b.WriteString("\n")
	_, err := io.WriteString(out, b.String())
	return err
}
