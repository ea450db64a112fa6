// Package report renders a physical estimate as a JSON document.
//
// A Report carries raw figures (PhysicalCounts, LogicalQubit, TFactory)
// next to human readable ones (PhysicalCountsFormatted): metric prefixes and
// thousand separators come from go-humanize, durations are expressed in the
// largest unit that keeps a non-zero integer part, and error rates are
// truncated to three significant digits.
package report
