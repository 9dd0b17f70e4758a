// Package tables finds tabular regions in loosely formatted extracted text
// and rewrites them as enumerated lists.
//
// # Detection
//
// [Detect] scans lines once. A line is tabular when it carries enough tabs,
// enough pipes, or enough fields separated by wide space runs. Runs shorter
// than [Config.MinRows] are treated as prose, so a single sentence with an
// accidental gap never becomes a table. Blank lines inside a run are kept as
// row spacing.
//
// # Transcoding
//
// [ToList] and [RowsToList] turn rows into list text:
//
//	**Table: Name, Age, City**
//	1. Name: John | Age: 30 | City: NYC
//	2. Name: Jane | Age: 28 | City: LA
//
// Header rows are inferred by [InferHeader]. HTML tables go through
// [ParseHTMLTables] and [HTMLToList]; [Rewrite] and [RewriteHTML] replace
// every region in place.
//
// Transcoded list lines never satisfy the tabular test, so running [Detect]
// over [Rewrite] output finds nothing new.
package tables
