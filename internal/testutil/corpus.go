package testutil

import "strings"

// FuzzSeeds returns representative inputs for combinator fuzz targets:
// clean lists, trailing and leading separators, junk tails, and a long run.
func FuzzSeeds() []string {
	return []string{
		"",
		"1",
		"1,2,3",
		"1,2,",
		",1",
		"-5,10x",
		"12a34",
		"0,-0,007",
		"1,,2",
		strings.Repeat("7,", 64) + "7",
	}
}
