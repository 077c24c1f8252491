package main

import "github.com/malexander/workhours/cmd"

func main() {
	cmd.Execute()
}
