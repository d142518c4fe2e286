package main

import (
	"context"
	"errors"
	"fmt"

	"otc-randomizer/cli"
	"otc-randomizer/models"
	"otc-randomizer/randomizer"
	"otc-randomizer/service"
	"otc-randomizer/utils"
)

const banner = `##########################################################################################

# Product Randomizer

##########################################################################################

    The program will make a list of random products from the database to emulate a transaction.
    Answer the following two questions and hit enter. Type 'Q' to exit.
`

// session runs one interactive randomizer round
type session struct {
	p            *cli.Prompter
	transactions service.TransactionServiceInterface
}

func (s *session) run(ctx context.Context) error {
	s.p.Printf("%s\n", banner)

	food, err := s.p.AskYesNo("  Would you like to randomize products from the food database? Y/N ")
	if err != nil {
		return err
	}
	total, err := s.p.AskMonetary("  What is your transaction total? ")
	if err != nil {
		return err
	}
	category := models.CategoryOTC
	if food {
		category = models.CategoryFood
	}

	result, err := s.transactions.GenerateReport(ctx, category, total)
	switch {
	case errors.Is(err, randomizer.ErrEmptyCatalog):
		s.p.Printf("\n  The %s database has no items to pick from\n", category)
		return s.p.Pause("")
	case errors.Is(err, service.ErrInvalidTarget):
		s.p.Printf("\n  %v\n", err)
		return s.p.Pause("")
	case errors.Is(err, randomizer.ErrInvalidPrice):
		s.p.Printf("\n  %v\n  Fix the item price with the catalog manager and try again\n", err)
		return s.p.Pause("")
	case err != nil:
		return err
	}

	s.printSummary(result)
	return s.p.Pause("Done creating random transaction")
}

func (s *session) printSummary(result *service.TransactionReport) {
	basket := result.Transaction.Basket
	s.p.Printf("\n  Picked %d items from the %s database\n", len(basket.Items), result.Transaction.Category)
	s.p.Printf("  Target total: %s\n", utils.FormatUSD(basket.Target))
	s.p.Printf("  Final total:  %s\n", utils.FormatUSD(basket.Total()))
	s.p.Printf("  Remainder:    %s\n", utils.FormatUSD(basket.Remainder))
	s.p.Printf("\n  Report written to %s\n", result.Artifact.HTMLPath)
	if result.Artifact.PDFPath != "" {
		s.p.Printf("  PDF written to %s\n", result.Artifact.PDFPath)
	}
	if result.PublishedURL != "" {
		s.p.Printf("  Published to %s\n", result.PublishedURL)
	}
}

// runOnce generates a report without prompting, for scripted use
func runOnce(ctx context.Context, p *cli.Prompter, transactions service.TransactionServiceInterface, rawCategory, rawTotal string) error {
	category, err := models.ParseCategory(rawCategory)
	if err != nil {
		return err
	}
	if !utils.ValidMonetary(rawTotal) {
		return fmt.Errorf("invalid total %q", rawTotal)
	}
	total, err := utils.ParseMonetary(rawTotal)
	if err != nil {
		return err
	}

	result, err := transactions.GenerateReport(ctx, category, total)
	if err != nil {
		return err
	}
	(&session{p: p}).printSummary(result)
	return nil
}
