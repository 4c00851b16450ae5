package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/mchmarny/gusto/pkg/recommender"
	"github.com/mchmarny/gusto/pkg/restaurant"
	"github.com/mchmarny/gusto/pkg/serializer"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "Generate restaurant recommendations for a price tier and cuisines",
		Description: `Generate restaurant recommendations based on the requested parameters:
  - Price tier ($, $$, $$$, or $$$$)
  - One or more desired cuisines

Restaurants in the requested price tier that are tagged with at least one of
the requested cuisines are returned sorted by rating descending. The
recommendation can be output in JSON, YAML, or table format.

# Examples

Cheap Chinese or Thai food from the embedded sample dataset:

  gusto recommend --price '$' --cuisine Chinese --cuisine Thai

Same query against a dataset file, written to a YAML file:

  gusto recommend --dataset restaurants.txt --price '$' \
    --cuisine Chinese --cuisine Thai --format yaml --output rec.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "price",
				Aliases: []string{"p"},
				Usage: fmt.Sprintf("Price tier (supported values: %s)",
					restaurant.SupportedPriceTiers()),
			},
			&cli.StringSliceFlag{
				Name:    "cuisine",
				Aliases: []string{"c"},
				Usage:   "Desired cuisine (can be repeated)",
			},
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

			q, err := buildQueryFromCmd(cmd)
			if err != nil {
				return fmt.Errorf("error parsing recommendation input parameter: %w", err)
			}

			r := recommender.New(
				recommender.WithDatasetPath(cmd.String("dataset")),
			)

			rec, err := r.Recommend(ctx, q)
			if err != nil {
				return fmt.Errorf("error building recommendation: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer closeSerializer(ser)

			return ser.Serialize(ctx, rec)
		},
	}
}

// buildQueryFromCmd constructs a recommender.Query from CLI command flags.
func buildQueryFromCmd(cmd *cli.Command) (*recommender.Query, error) {
	price, err := restaurant.ParsePriceTier(cmd.String("price"))
	if err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}

	cuisines := cmd.StringSlice("cuisine")
	if len(cuisines) == 0 {
		return nil, fmt.Errorf("at least one cuisine is required")
	}

	return &recommender.Query{
		Price:    price,
		Cuisines: cuisines,
	}, nil
}
