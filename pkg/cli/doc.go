// Package cli implements the command-line interface for the gusto tool.
//
// # Overview
//
// The gusto CLI answers restaurant recommendation queries over a flat-file
// dataset: given a price tier and a set of desired cuisines, it returns the
// matching restaurants sorted by rating. It also provides discovery commands
// for the dataset's cuisine labels and the supported price tiers.
//
// # Commands
//
// recommend - Generate recommendations:
//
//	gusto recommend --price '$' --cuisine Chinese --cuisine Thai [--dataset FILE]
//
// Runs the parse-filter-rank pipeline and outputs the recommendation in JSON,
// YAML, or table format. When no dataset file is provided, the embedded
// sample dataset is used.
//
// cuisines - List dataset cuisine labels:
//
//	gusto cuisines [--dataset FILE]
//
// Lists the cuisine labels present in the dataset with restaurant counts.
//
// tiers - List supported price tiers:
//
//	gusto tiers
//
// Lists the four valid price tier symbols.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//	--dataset, -f  Dataset file path (default: embedded sample; also GUSTO_DATASET)
//
// # Environment
//
// LOG_LEVEL controls logging verbosity (debug, info, warn, error). All logs
// are structured JSON on stderr so stdout stays clean for command output.
package cli
