package site

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// Assets returns the stylesheet, script and default thumbnail served
// under /assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
