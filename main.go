package main

import "github.com/chiawei-lin/kcouper/cmd"

func main() {
	cmd.Execute()
}
