package main

import "github.com/rgonek/draftail-anchors/cmd/anchors/cmd"

func main() {
	cmd.Execute()
}
