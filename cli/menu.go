package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

const (
	rule  = "  ----------------------------------------------------------------------------------------------"
	green = "\033[92m"
	reset = "\033[0m"
)

// MenuOption is one selectable line of a menu
type MenuOption struct {
	Key         string
	Label       string
	Description string
}

// Menu is a titled list of options
type Menu struct {
	Title   string
	Options []MenuOption
}

// MainMenu is the catalog manager's top level menu
var MainMenu = Menu{
	Title: "ITEM DATABASE MANAGER",
	Options: []MenuOption{
		{Key: "1", Label: "Product Manager \t", Description: "Add, delete, and update items in the database"},
		{Key: "2", Label: "Database Refresh \t", Description: "Sort database and refresh barcode images"},
		{Key: "3", Label: "Master List Generator \t", Description: "Create a master list html file of all database items"},
		{Key: "Q", Label: "QUIT\t\t\t", Description: "Type 'Q' to exit the program"},
	},
}

// ProductMenu is the item editing sub-menu
var ProductMenu = Menu{
	Title: "DATABASE PRODUCT MANAGER",
	Options: []MenuOption{
		{Key: "4", Label: "New Item Registration \t", Description: "Add a new item to either OTC or Food database"},
		{Key: "5", Label: "Update Existing Item \t", Description: "Update an existing item in the database"},
		{Key: "6", Label: "Delete Existing Item \t", Description: "Delete an existing item in the database"},
		{Key: "B", Label: "BACK\t\t\t", Description: "Type 'B' to return to the main menu"},
		{Key: "Q", Label: "QUIT\t\t\t", Description: "Type 'Q' to exit the program"},
	},
}

// Render prints the menu
func (m Menu) Render(w io.Writer) {
	fmt.Fprintf(w, "%s\n\n", rule)
	fmt.Fprintf(w, "    %s\n\n", m.Title)
	fmt.Fprintf(w, "%s\n\n", rule)
	fmt.Fprint(w, "  The following functions are available...\n\n")
	for _, opt := range m.Options {
		fmt.Fprintf(w, "    [%s] %s|  %s\n\n", opt.Key, opt.Label, opt.Description)
	}
	fmt.Fprintf(w, "%s\n\n", rule)
}

// Keys lists the option keys in display order
func (m Menu) Keys() []string {
	keys := make([]string, 0, len(m.Options))
	for _, opt := range m.Options {
		keys = append(keys, opt.Key)
	}
	return keys
}

// PromptLabel is the highlighted "Enter a menu option" line
func (m Menu) PromptLabel() string {
	return fmt.Sprintf("%s  Enter a menu option [%s] on the keyboard and press enter: %s", green, strings.Join(m.Keys(), ","), reset)
}

// Prompt renders the menu and reads a choice. Q is reported as ErrQuit.
func (m Menu) Prompt(p *Prompter) (string, error) {
	m.Render(p.Out())
	return p.Choose(m.PromptLabel(), m.Keys()...)
}

// ClearScreen wipes the terminal with ANSI escapes
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// ExitOnInterrupt prints the Ctrl+C message, runs cleanup and exits when the
// process is interrupted. Blocked prompts cannot observe a cancelled context.
func ExitOnInterrupt(out io.Writer, cleanup func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Fprintln(out, InterruptMessage)
		if cleanup != nil {
			cleanup()
		}
		os.Exit(0)
	}()
}
