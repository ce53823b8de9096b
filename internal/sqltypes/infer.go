package sqltypes

import "strings"

// separatorCandidates is the fixed priority order tested by GuessSeparator.
// The order is part of the compatibility contract and must not change.
var separatorCandidates = []string{",", "|", ";"}

// GuessSeparator picks the field separator for a delimited sample: the first
// candidate whose occurrence count is non-zero and maximal. When no candidate
// occurs at all, the default "," is returned.
func GuessSeparator(sample string) string {
	sep := separatorCandidates[0]
	max := strings.Count(sample, sep)
	for _, c := range separatorCandidates[1:] {
		if n := strings.Count(sample, c); n > max {
			max, sep = n, c
		}
	}
	return sep
}

// CollectionBrackets reports the collection delimiter characters of a sample
// when its first and last characters form a recognized pair: (...) or {...}.
func CollectionBrackets(sample string) (open, closing string, ok bool) {
	if len(sample) <= 2 {
		return "", "", false
	}
	first, last := sample[0], sample[len(sample)-1]
	if (first == '(' && last == ')') || (first == '{' && last == '}') {
		return string(first), string(last), true
	}
	return "", "", false
}

// IsJSONObject reports whether the sample is brace-delimited, which selects
// the JSON map extractor over the delimited one.
func IsJSONObject(sample string) bool {
	return len(sample) > 2 && sample[0] == '{' && sample[len(sample)-1] == '}'
}

// HasEmptyElements reports whether the sample contains consecutive
// separators once spaces are removed, meaning the collection holds empty
// elements that must be mapped to NULL on extraction.
func HasEmptyElements(sample, sep string) bool {
	return strings.Count(strings.ReplaceAll(sample, " ", ""), sep+sep) > 0
}
