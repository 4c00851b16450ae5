package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mchmarny/gusto/pkg/dataset"
	"github.com/mchmarny/gusto/pkg/restaurant"
	"github.com/mchmarny/gusto/pkg/serializer"
)

// titleCaser normalizes cuisine labels for display, dataset labels are
// free-form text.
var titleCaser = cases.Title(language.English)

// cuisineInfo is one row of the cuisines listing.
type cuisineInfo struct {
	Label       string `json:"label" yaml:"label"`
	Restaurants int    `json:"restaurants" yaml:"restaurants"`
}

func cuisinesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "cuisines",
		EnableShellCompletion: true,
		Usage:                 "List cuisine labels present in the dataset",
		Description: `List the cuisine labels found in the dataset along with the number of
restaurants tagged with each. Useful for discovering valid --cuisine values
before running a recommendation query.`,
		Flags: []cli.Flag{
			datasetFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			idx, err := parseDataset(cmd.String("dataset"))
			if err != nil {
				return fmt.Errorf("error reading dataset: %w", err)
			}

			list := make([]*cuisineInfo, 0, len(idx.NamesByCuisine))
			for label, names := range idx.NamesByCuisine {
				list = append(list, &cuisineInfo{
					Label:       titleCaser.String(label),
					Restaurants: len(names),
				})
			}
			sort.Slice(list, func(i, j int) bool {
				return list[i].Label < list[j].Label
			})

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, list)
		},
	}
}

func tiersCmd() *cli.Command {
	return &cli.Command{
		Name:                  "tiers",
		EnableShellCompletion: true,
		Usage:                 "List the supported price tiers",
		Description: `List the four supported price tier symbols in increasing cost order.
These are the only valid --price values.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// Parse output format
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			tiers := make([]string, 0, len(restaurant.SupportedPriceTiers()))
			for _, tier := range restaurant.SupportedPriceTiers() {
				tiers = append(tiers, tier.String())
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, tiers)
		},
	}
}

// parseDataset builds the index from the provided path, falling back to the
// embedded sample dataset when the path is empty.
func parseDataset(path string) (*dataset.Index, error) {
	p := dataset.NewParser()
	if path != "" {
		return p.ParseFile(path)
	}
	return p.Parse(dataset.Sample())
}
