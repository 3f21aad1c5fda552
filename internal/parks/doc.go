// Package parks loads and validates the national parks hiking-conditions
// dataset.
//
// # Input Format
//
// The input is a delimited text file with a header row. Columns are matched
// by exact name; order does not matter and extra columns are ignored:
//
//	Park (or Name), State, Latitude, Longitude, Jan, Feb, ..., Dec
//
// Month columns hold a hiking-condition score, nominally 0–10. Latitude and
// Longitude are WGS-84 decimal degrees and must always parse.
//
// # Missing Values
//
// An empty month cell, or one of the NA tokens (NA, N/A, NaN, null; case
// insensitive), is a missing value and is stored as NaN. Under
// [MissingSkip] the average is taken over the present values only, and is
// NaN when all twelve are missing. Under [MissingError] the first missing
// value fails the load with a [*ValueError].
//
// # Derived Average
//
// Every [Record] carries AverageScore, the arithmetic mean of its present
// monthly values, computed once at load time over [Months].
package parks
