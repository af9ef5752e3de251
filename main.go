package main

import "github.com/mouse-blink/solint/cmd"

func main() {
	cmd.Execute()
}
