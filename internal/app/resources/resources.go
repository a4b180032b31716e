// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// FS holds the page chrome shared by every full page: the document head,
// the top bar with the theme toggle and the footer.
//
//go:embed templates/*.gohtml
var FS embed.FS

// Patterns matches the shared template files inside FS.
var Patterns = []string{"templates/*.gohtml"}

var registerOnce sync.Once

func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: Patterns,
		})
	})
}
