// Package assets holds the compiled-in images and stylesheet served under /static.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed static
var files embed.FS

// Prefix is the URL path the static file system is mounted at.
const Prefix = "/static"

// Handle names a compiled-in asset without exposing where it lives.
type Handle string

const (
	HeroImage      Handle = "hero"
	AboutImage     Handle = "about"
	ProjectVerq    Handle = "project-verq"
	ProjectExpense Handle = "project-expense"
	Favicon        Handle = "favicon"
)

var paths = map[Handle]string{
	HeroImage:      "img/hero.svg",
	AboutImage:     "img/about.svg",
	ProjectVerq:    "img/verq.svg",
	ProjectExpense: "img/expense.svg",
	Favicon:        "img/favicon.svg",
}

// Stylesheet is the public URL of the site stylesheet.
const Stylesheet = Prefix + "/css/site.css"

// Valid reports whether h names a compiled-in asset.
func Valid(h Handle) bool {
	_, ok := paths[h]
	return ok
}

// Path returns the public URL for h, or an empty string for an unknown handle.
func Path(h Handle) string {
	p, ok := paths[h]
	if !ok {
		return ""
	}
	return Prefix + "/" + p
}

// FS returns the static file tree rooted at the directory served under Prefix.
func FS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded static dir missing: %v", err))
	}
	return sub
}

// Handles lists every known handle.
func Handles() []Handle {
	return []Handle{HeroImage, AboutImage, ProjectVerq, ProjectExpense, Favicon}
}
