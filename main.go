package main

import "github.com/Hadi2525/toolbridge/cmd"

func main() {
	cmd.Execute()
}
