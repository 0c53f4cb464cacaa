package billing

import (
	"math"
	"strings"
)

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var wordTeens = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian numbering scales: the first segment covers three digits, every
// later segment covers two.
var indianScales = []string{"", "Thousand", "Lakh", "Crore", "Arab"}

// hundredsToWords converts 0-999 to words.
func hundredsToWords(n int) string {
	var sb strings.Builder
	if n >= 100 {
		sb.WriteString(wordOnes[n/100])
		sb.WriteString(" Hundred ")
		n %= 100
	}
	switch {
	case n >= 20:
		sb.WriteString(wordTens[n/10])
		sb.WriteString(" ")
		sb.WriteString(wordOnes[n%10])
	case n >= 10:
		sb.WriteString(wordTeens[n-10])
	case n > 0:
		sb.WriteString(wordOnes[n])
	}
	return strings.TrimSpace(sb.String())
}

// AmountInWords converts a non-negative amount to Indian-numbering-system
// words. The amount is rounded to the nearest rupee first; paise are not
// spoken. Values above the Arab scale are outside the supported range and
// render without a scale word for the overflow segment.
func AmountInWords(amount float64) string {
	n := int64(math.Round(amount))
	if n == 0 {
		return "Zero Only"
	}

	segments := []int{int(n % 1000)}
	n /= 1000
	for n > 0 {
		segments = append(segments, int(n%100))
		n /= 100
	}

	var words string
	for i, seg := range segments {
		if seg == 0 {
			continue
		}
		part := hundredsToWords(seg)
		if i < len(indianScales) && indianScales[i] != "" {
			part += " " + indianScales[i]
		}
		words = strings.TrimSpace(part + " " + words)
	}
	return words + " Only"
}
