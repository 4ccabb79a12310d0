package main

import "examhelper/internal/cli"

func main() {
	cli.Execute()
}
