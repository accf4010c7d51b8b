package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/samdwyer/tradeworld/data"
	"github.com/samdwyer/tradeworld/internal/gamedata"
)

func runCatalog(w io.Writer) error {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return err
	}
	templates, err := data.LoadTileTemplates()
	if err != nil {
		return err
	}

	heading := color.New(color.FgCyan, color.Bold)

	heading.Fprintln(w, "\nItems")
	printItems(w, catalog)

	heading.Fprintln(w, "\nHousing")
	printHousing(w, catalog)

	heading.Fprintln(w, "\nProduction")
	printProduction(w, catalog)

	heading.Fprintln(w, "\nWorkers")
	printWorkers(w, catalog)

	heading.Fprintln(w, "\nTerrain")
	printTerrain(w, templates)
	return nil
}

func printItems(w io.Writer, c *gamedata.Catalog) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"ID", "Name", "Category", "Weight (kg)", "Volume (L)"}),
	)
	for _, item := range c.Items() {
		table.Append([]string{
			item.ID,
			item.Name,
			item.Category,
			fmt.Sprintf("%d", item.Weight),
			fmt.Sprintf("%d", item.Volume),
		})
	}
	table.Render()
}

func printHousing(w io.Writer, c *gamedata.Catalog) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Housing", "Cost", "Houses", "Tier", "Land"}),
	)
	for _, h := range gamedata.HousingTypes() {
		def := c.Housing(h)
		table.Append([]string{
			def.Name,
			fmt.Sprintf("$%.2f", def.Cost),
			fmt.Sprintf("%d", def.Accommodates),
			def.Tier.String(),
			fmt.Sprintf("%d", def.Land),
		})
	}
	table.Render()
}

func printProduction(w io.Writer, c *gamedata.Catalog) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Building", "Cost", "Workers", "Land"}),
	)
	for _, p := range gamedata.ProductionTypes() {
		def := c.Production(p)
		crew := make([]string, 0, len(def.Workers))
		for _, req := range def.Workers {
			crew = append(crew, fmt.Sprintf("%d %s", req.Count, req.Tier))
		}
		if len(crew) == 0 {
			crew = append(crew, "-")
		}
		table.Append([]string{
			def.Name,
			fmt.Sprintf("$%.2f", def.Cost),
			strings.Join(crew, ", "),
			fmt.Sprintf("%d", def.Land),
		})
	}
	table.Render()
}

func printWorkers(w io.Writer, c *gamedata.Catalog) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Tier", "Name", "Cost", "Housed in"}),
	)
	for _, tier := range gamedata.WorkerTiers() {
		def := c.Worker(tier)
		table.Append([]string{
			tier.String(),
			def.Name,
			fmt.Sprintf("$%.2f", def.Cost),
			c.HousingFor(tier).Name,
		})
	}
	table.Render()
}

func printTerrain(w io.Writer, templates []data.TileTemplate) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Terrain", "Glyph", "Price", "Resources", "Weight"}),
	)
	for _, t := range templates {
		resources := strings.Join(t.Resources, ", ")
		if resources == "" {
			resources = "-"
		}
		table.Append([]string{
			t.Name,
			t.Glyph,
			fmt.Sprintf("$%.2f", t.Price),
			resources,
			fmt.Sprintf("%d", t.SpawnWeight),
		})
	}
	table.Render()
}
