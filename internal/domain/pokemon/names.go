package pokemon

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DisplayName turns a catalog name ("quick-attack") into a title ("Quick Attack")
func DisplayName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "-", " ")
	return cases.Title(language.English).String(name)
}
