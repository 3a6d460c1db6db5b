package main

import "github.com/jlave-dev/squarewise/cmd"

func main() {
	cmd.Execute()
}
