package utils

import "strings"

// ContainsString returns true if targetString is one of sliceOfStrings
func ContainsString(targetString string, sliceOfStrings []string) bool {
	return IndexOf(targetString, sliceOfStrings) >= 0
}

// IndexOf returns the position of targetString in sliceOfStrings, or -1 if it is not there
func IndexOf(targetString string, sliceOfStrings []string) int {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return i
		}
	}
	return -1
}

// Title upper-cases the first letter of each space separated word, e.g. new york city -> New York City
func Title(value string) string {
	words := strings.Fields(value)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
