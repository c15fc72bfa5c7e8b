package main

import "github.com/theirongolddev/radar/cmd"

func main() {
	cmd.Execute()
}
