package main

import "github.com/lhopki01/git-mass-delete/cli"

var version = "dev"

func main() {
	cli.Version = version
	cli.Execute()
}
