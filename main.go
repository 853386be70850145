// Package main implements a CLI tool that tags the next patch release of a
// git repository and pushes the tag to origin.
package main

import (
	"context"
	"fmt"
	"os"

	nexttag "github.com/bcomnes/nexttag/pkg"
)

func main() {
	_, err := nexttag.Run(context.Background(), nexttag.Options{
		Repo:   nexttag.GitCLI{},
		Remote: nexttag.DefaultRemote,
		In:     os.Stdin,
		Out:    os.Stdout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
