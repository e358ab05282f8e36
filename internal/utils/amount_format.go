package utils

import "github.com/shopspring/decimal"

// reportPrecision is the decimal precision used for monetary amounts in
// report output and log lines.
const reportPrecision = 2

// FormatAmount formats a monetary amount with the standard report precision.
// Example: amount 12.3456 returns "12.35"
func FormatAmount(amount decimal.Decimal) string {
	return amount.Round(reportPrecision).String()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you need a non-standard precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
