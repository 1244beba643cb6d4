package main

import "github.com/aalvaropc/patternkit/internal/cli"

func main() {
	cli.Execute()
}
