// Package serializer provides utilities for serializing data to various formats.
//
// The package supports three main output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, data); err != nil {
//		log.Fatal(err)
//	}
//
// Reading previously written data back:
//
//	reader, err := serializer.NewFileReaderAuto("recommendation.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer reader.Close()
//	var rec recommender.Recommendation
//	if err := reader.Deserialize(&rec); err != nil {
//		log.Fatal(err)
//	}
//
// The package automatically handles:
//   - Flattening nested structures for table format
//   - Resource cleanup via Close() method
package serializer
