// Package dictlink builds links to an online Chinese dictionary.
package dictlink

// BaseURL is the MDBG word dictionary search URL. The word is appended as is.
const BaseURL = "https://www.mdbg.net/chinese/dictionary?page=worddict&wdrst=0&wdqb="

// Link returns the dictionary lookup URL for word.
func Link(word string) string {
	return BaseURL + word
}
