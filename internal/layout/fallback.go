package layout

import "github.com/xkilldash9x/skelgen-cli/api/schemas"

// fallbackEntry is the width/height pair used when an element carries no
// usable measurement or declaration.
type fallbackEntry struct {
	Width  schemas.Size
	Height schemas.Size
}

// fallbackByTag approximates the footprint of common elements. Headings
// shrink in width and height as the level drops; form controls get the
// conventional control sizes.
var fallbackByTag = map[string]fallbackEntry{
	"h1":      {schemas.Unit("80%"), schemas.Unit("2rem")},
	"h2":      {schemas.Unit("72%"), schemas.Unit("1.8rem")},
	"h3":      {schemas.Unit("64%"), schemas.Unit("1.6rem")},
	"h4":      {schemas.Unit("56%"), schemas.Unit("1.4rem")},
	"h5":      {schemas.Unit("48%"), schemas.Unit("1.2rem")},
	"h6":      {schemas.Unit("40%"), schemas.Unit("1rem")},
	"p":       {schemas.Unit("100%"), schemas.Unit("1.25rem")},
	"button":  {schemas.Unit("6rem"), schemas.Unit("2.5rem")},
	"input":   {schemas.Unit("12rem"), schemas.Unit("2.5rem")},
	"select":  {schemas.Unit("12rem"), schemas.Unit("2.5rem")},
	"img":     {schemas.Unit("8rem"), schemas.Unit("6rem")},
	"video":   {schemas.Unit("8rem"), schemas.Unit("6rem")},
	"div":     {schemas.Unit("100%"), schemas.Unit("2rem")},
	"section": {schemas.Unit("100%"), schemas.Unit("2rem")},
	"article": {schemas.Unit("100%"), schemas.Unit("2rem")},
	"header":  {schemas.Unit("100%"), schemas.Unit("2rem")},
	"footer":  {schemas.Unit("100%"), schemas.Unit("2rem")},
	"main":    {schemas.Unit("100%"), schemas.Unit("2rem")},
	"nav":     {schemas.Unit("100%"), schemas.Unit("2rem")},
}

var fallbackDefault = fallbackEntry{schemas.Unit("8rem"), schemas.Unit("2rem")}

// FallbackDimensions returns the per-tag fallback size. Every tag not in
// the table gets the generic default.
func FallbackDimensions(tag string) (width, height schemas.Size) {
	if entry, ok := fallbackByTag[tag]; ok {
		return entry.Width, entry.Height
	}
	return fallbackDefault.Width, fallbackDefault.Height
}
