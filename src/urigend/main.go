package main

import "github.com/sample-gallery/urigen/src/urigend/cmd"

func main() {
	cmd.Execute()
}
