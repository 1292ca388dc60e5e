package main

import "funcscan/internal/cli"

func main() {
	cli.Execute()
}
