package main

import (
	"github.com/aueskinj/Resume/cmd"
)

func main() {
	cmd.Execute()
}
