package main

import "github.com/kgraph-hub/trapi-summary/cmd/summarize/cmd"

func main() {
	cmd.Execute()
}
