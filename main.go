package main

import "github.com/telepair/lifesearch/cmd"

func main() {
	cmd.Execute()
}
