package main

import (
	"fmt"
	"os"
)

func main() {
	root, cleanup := newRootCmd()
	err := root.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
