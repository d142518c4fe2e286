package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"otc-randomizer/cli"
	"otc-randomizer/logger"
	"otc-randomizer/models"
	"otc-randomizer/repository"
	"otc-randomizer/service"
	"otc-randomizer/utils"
)

// manager drives the interactive catalog menus
type manager struct {
	p         *cli.Prompter
	catalog   service.CatalogServiceInterface
	barcodes  service.BarcodeServiceInterface
	reports   service.ReportServiceInterface
	publisher service.PublisherInterface // nil when publishing is disabled
}

func trimmed(valid func(string) bool) func(string) bool {
	return func(s string) bool {
		return valid(strings.TrimSpace(s))
	}
}

func categoryFor(food bool) models.Category {
	if food {
		return models.CategoryFood
	}
	return models.CategoryOTC
}

// run shows the main menu until the user quits
func (m *manager) run(ctx context.Context) error {
	cli.ClearScreen(m.p.Out())
	for {
		choice, err := cli.MainMenu.Prompt(m.p)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.productMenu(ctx)
		case "2":
			err = m.refresh(ctx)
		case "3":
			err = m.masterList(ctx)
		}
		if err := m.handleActionError(ctx, err); err != nil {
			return err
		}
		cli.ClearScreen(m.p.Out())
	}
}

// productMenu shows the item sub-menu until the user goes back or quits
func (m *manager) productMenu(ctx context.Context) error {
	cli.ClearScreen(m.p.Out())
	for {
		choice, err := cli.ProductMenu.Prompt(m.p)
		if err != nil {
			return err
		}

		switch choice {
		case "4":
			err = m.newItem(ctx)
		case "5":
			err = m.updateItem(ctx)
		case "6":
			err = m.deleteItem(ctx)
		case "b":
			return nil
		}
		if err := m.handleActionError(ctx, err); err != nil {
			return err
		}
		cli.ClearScreen(m.p.Out())
	}
}

// handleActionError reports a failed menu action so the menu keeps running.
// Quitting and cancellation are passed through.
func (m *manager) handleActionError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cli.ErrQuit) || ctx.Err() != nil {
		return err
	}
	logger.Error("❌ Menu action failed", zap.Error(err))
	m.p.Printf("  An error occurred: %v\n", err)
	return m.p.Pause("")
}

func (m *manager) newItem(ctx context.Context) error {
	name, err := m.p.Ask("  What is the name of the item? ", trimmed(utils.ValidName))
	if err != nil {
		return err
	}
	sku, err := m.p.Ask("  What is the item's 10 to 12 digit sku number? ", trimmed(utils.ValidSKU))
	if err != nil {
		return err
	}
	price, err := m.p.AskMonetary("  What is the price of the item? ")
	if err != nil {
		return err
	}
	taxable, err := m.p.AskYesNo("  Is the item taxable? Y/N ")
	if err != nil {
		return err
	}
	food, err := m.p.AskYesNo("  Is the item a food product? Y/N ")
	if err != nil {
		return err
	}
	category := categoryFor(food)

	_, err = m.catalog.CreateItem(ctx, category, service.NewItemInput{
		Name:      name,
		SKU:       sku,
		BasePrice: price,
		Taxable:   taxable,
	})
	switch {
	case errors.Is(err, repository.ErrDuplicateSKU):
		m.p.Printf("\n  An item with sku %s is already in the database\n", strings.TrimSpace(sku))
		return m.p.Pause("")
	case errors.Is(err, service.ErrInvalidItem):
		m.p.Printf("\n  %v\n", err)
		return m.p.Pause("")
	case err != nil:
		return err
	}

	return m.p.Pause(fmt.Sprintf("New item was added to the %s database", category))
}

// lookup asks for a SKU and finds the item in either catalog. A nil item means
// nothing matched and the user was told so.
func (m *manager) lookup(ctx context.Context) (models.Category, *models.CatalogItem, error) {
	sku, err := m.p.Ask("  Enter the first 10 or more digits of the item sku number: ", trimmed(utils.ValidSKU))
	if err != nil {
		return "", nil, err
	}

	category, item, err := m.catalog.FindItem(ctx, sku)
	if errors.Is(err, repository.ErrItemNotFound) {
		m.p.Println("\n  Item was not found in the food or otc database")
		return "", nil, nil
	}
	if err != nil {
		return "", nil, err
	}
	return category, item, nil
}

func (m *manager) updateItem(ctx context.Context) error {
	category, item, err := m.lookup(ctx)
	if err != nil {
		return err
	}
	if item == nil {
		return m.p.Pause("")
	}

	m.p.PrintItem("The item being updated:", *item)

	var update service.ItemUpdate
	rename, err := m.p.AskYesNo("  Update the name of the item? Y/N ")
	if err != nil {
		return err
	}
	if rename {
		name, err := m.p.Ask("  What is the new name of the item? ", trimmed(utils.ValidName))
		if err != nil {
			return err
		}
		update.Name = &name
	}

	reprice, err := m.p.AskYesNo("  Update the price of the item? Y/N ")
	if err != nil {
		return err
	}
	if reprice {
		price, err := m.p.AskMonetary("  What is the new price of the item? ")
		if err != nil {
			return err
		}
		update.BasePrice = &price
	}

	update.ToggleTaxable, err = m.p.AskYesNo("  Do you want to change the item's taxability? Y/N ")
	if err != nil {
		return err
	}

	_, err = m.catalog.UpdateItem(ctx, item.SKU, update)
	switch {
	case errors.Is(err, service.ErrNoChanges):
		m.p.Println("\n  No changes were made to the item")
	case errors.Is(err, service.ErrInvalidItem):
		m.p.Printf("\n  %v\n", err)
	case err != nil:
		return err
	default:
		m.p.Printf("  Item %s was updated successfully in %s folder\n", item.SKU, category)
	}
	return m.p.Pause("")
}

func (m *manager) deleteItem(ctx context.Context) error {
	category, item, err := m.lookup(ctx)
	if err != nil {
		return err
	}
	if item == nil {
		return m.p.Pause("")
	}

	m.p.PrintItem("The item being removed:", *item)
	confirm, err := m.p.AskYesNo("  Are you sure you want to delete this item from the database? Y/N ")
	if err != nil {
		return err
	}
	if !confirm {
		m.p.Println("\n  You have chosen not to delete the item")
		return m.p.Pause("")
	}

	if _, err := m.catalog.DeleteItem(ctx, item.SKU); err != nil {
		return err
	}
	m.p.Printf("  Item %s was deleted successfully in %s folder\n", item.SKU, category)
	return m.p.Pause("")
}

// refresh sorts a catalog by full price and downloads its barcode images
func (m *manager) refresh(ctx context.Context) error {
	food, err := m.p.AskYesNo("\n  Would you like to sync the food database? Y/N ")
	if err != nil {
		return err
	}
	force, err := m.p.AskYesNo("  Download images again for items that already have one? Y/N ")
	if err != nil {
		return err
	}
	category := categoryFor(food)
	m.p.Println()

	items, err := m.catalog.RefreshCatalog(ctx, category)
	if err != nil {
		return err
	}
	m.p.Printf("  Sorted %d items in the %s database\n\n", len(items), category)

	bar := cli.NewProgressBar(m.p.Out())
	report, err := m.barcodes.SyncCategory(ctx, category, force, bar.Update)
	if err != nil {
		return err
	}

	m.p.Printf("\n  Downloaded %d, skipped %d, failed %d\n", report.Downloaded, report.Skipped, len(report.Failed))
	for _, failure := range report.Failed {
		m.p.Printf("  Failed to retrieve the image for %s\n", failure)
	}
	return m.p.Pause("Done syncing database and barcodes")
}

// masterList writes the HTML master list of a catalog and publishes it when configured
func (m *manager) masterList(ctx context.Context) error {
	m.p.Println("\n  Creating a MASTER LIST of all database items\n\n  This function collects all items of a chosen database\n  and makes a file for you to view all items and their barcodes")

	food, err := m.p.AskYesNo("\n  Do you want to look at the food database? Y/N ")
	if err != nil {
		return err
	}
	category := categoryFor(food)

	items, err := m.catalog.ListItems(ctx, category)
	if err != nil {
		return err
	}
	html, err := m.reports.RenderMasterList(category, items)
	if err != nil {
		return err
	}

	artifact, err := m.reports.WriteReport(ctx, service.MasterListReportName, html)
	if err != nil {
		if artifact.HTMLPath == "" {
			return err
		}
		m.p.Printf("\n  PDF export failed: %v\n", err)
	}
	m.p.Printf("\n  Wrote %s\n", artifact.HTMLPath)

	if m.publisher != nil {
		url, err := m.publisher.Publish(ctx, artifact)
		if err != nil {
			logger.Error("❌ Failed to publish master list", zap.Error(err))
			m.p.Printf("  Upload failed: %v\n", err)
		} else {
			m.p.Printf("  Published to %s\n", url)
		}
	}
	return m.p.Pause("File written successfully")
}
