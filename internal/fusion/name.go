package fusion

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name splices the first half of nameA (rounded up) with the second half of
// nameB (split point rounded down), lower-casing the tail. Halves are measured
// in runes. The result is not guaranteed to be pronounceable.
func Name(nameA, nameB string) string {
	a := []rune(nameA)
	b := []rune(nameB)
	head := string(a[:(len(a)+1)/2])
	tail := string(b[len(b)/2:])
	return head + cases.Lower(language.Und).String(tail)
}

var descriptionTemplates = []string{
	"A powerful fusion of %[1]s and %[2]s!",
	"When %[1]s meets %[2]s, amazing things happen!",
	"The legendary combination of %[1]s and %[2]s!",
	"Born from the union of %[1]s and %[2]s!",
	"%[1]s + %[2]s = AWESOME!",
}

// Description picks a template by the first character code of the fusion key.
func Description(fusionKey, nameA, nameB string) string {
	idx := 0
	for _, r := range fusionKey {
		idx = int(r) % len(descriptionTemplates)
		break
	}
	return fmt.Sprintf(descriptionTemplates[idx], nameA, nameB)
}
