// Package cli holds the terminal helpers shared by the interactive programs.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"otc-randomizer/models"
	"otc-randomizer/utils"
)

// ErrQuit is returned when the user typed Q or the input was closed
var ErrQuit = errors.New("quit requested")

// Messages printed by the interactive programs
const (
	InvalidInputMessage = "  Invalid input"
	QuitMessage         = "\n  You entered 'Q' to quit the program. Bye bye!"
	InterruptMessage    = "\n  Ctrl+C was pressed. Exiting program."
	ContinueMessage     = "  Press enter to continue..."
)

// Prompter reads validated answers from a line based input
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and echoing prompts to out
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out is the writer prompts are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted output
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line of output
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Ask prints label and reads lines until valid accepts one.
// A nil valid accepts anything. A lone "Q" returns ErrQuit.
func (p *Prompter) Ask(label string, valid func(string) bool) (string, error) {
	for {
		fmt.Fprint(p.out, label)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if strings.EqualFold(strings.TrimSpace(line), "q") {
			return "", ErrQuit
		}
		if valid == nil || valid(line) {
			return line, nil
		}
		fmt.Fprintln(p.out, InvalidInputMessage)
	}
}

// AskYesNo asks a Y/N question
func (p *Prompter) AskYesNo(label string) (bool, error) {
	answer, err := p.Ask(label, utils.ValidYesNo)
	if err != nil {
		return false, err
	}
	return utils.IsYes(answer), nil
}

// AskMonetary asks for a non negative amount such as "1,234.50"
func (p *Prompter) AskMonetary(label string) (decimal.Decimal, error) {
	answer, err := p.Ask(label, func(s string) bool {
		return utils.ValidMonetary(strings.TrimSpace(s))
	})
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := utils.ParseMonetary(answer)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount %q: %w", answer, err)
	}
	return amount, nil
}

// Choose asks for one of keys (case-insensitive) and returns it lowercased
func (p *Prompter) Choose(label string, keys ...string) (string, error) {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[strings.ToLower(k)] = true
	}
	answer, err := p.Ask(label, func(s string) bool {
		return allowed[strings.ToLower(strings.TrimSpace(s))]
	})
	if err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(answer)), nil
}

// Pause prints message and waits for enter
func (p *Prompter) Pause(message string) error {
	label := "\n" + ContinueMessage
	if message != "" {
		label = "\n  " + message + label
	}
	_, err := p.Ask(label, nil)
	return err
}

// PrintItem shows an item the way it is stored in the archive
func (p *Prompter) PrintItem(heading string, item models.CatalogItem) {
	data, err := json.MarshalIndent(item, "", "    ")
	if err != nil {
		fmt.Fprintf(p.out, "  %s\n\n  %s (%s)\n\n", heading, item.Name, item.SKU)
		return
	}
	fmt.Fprintf(p.out, "  %s\n\n%s\n\n", heading, data)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrQuit
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
