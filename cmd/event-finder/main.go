package main

import "github.com/pfrederiksen/event-finder/internal/cli"

func main() {
	cli.Execute()
}
