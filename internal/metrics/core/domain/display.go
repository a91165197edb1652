package domain

import "fmt"

// The dependence and productivity scores are shown with a "%" suffix even
// though no percentage conversion happens.
func FormatPercent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

func FormatHours(v float64) string { return fmt.Sprintf("%.2f hours", v) }

func FormatScore(v float64) string { return fmt.Sprintf("%.2f", v) }
