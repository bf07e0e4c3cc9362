// Package buildinfo prints version data injected at link time, e.g.
//
//	go build -ldflags "-X github.com/dmitrijs2005/ruralportal/internal/buildinfo.Version=v1.2.0"
package buildinfo

import (
	"fmt"
	"io"

	"github.com/common-nighthawk/go-figure"
)

const AppName = "Sociedad Rural"

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBanner writes the application name in ASCII art.
func PrintBanner(w io.Writer) {
	fig := figure.NewFigure(AppName, "cybermedium", true)
	fmt.Fprintln(w, fig.String())
}

func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
