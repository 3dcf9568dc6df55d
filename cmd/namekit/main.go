package main

import "github.com/dmitrymomot/namekit/internal/cli"

func main() {
	cli.Execute()
}
