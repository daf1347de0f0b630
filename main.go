package main

import "github.com/canvaskit/canvaslint/cmd"

func main() {
	cmd.Execute()
}
