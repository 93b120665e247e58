package main

import "nutrition-assistant/internal/cli"

// main runs the faqctl command line tool.
func main() {
	cli.Execute()
}
