package main

import "github.com/carbon-dev/carbon/internal/cli"

func main() {
	cli.Execute()
}
