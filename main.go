package main

import "github.com/jankreimeier/sudoku/cmd"

func main() {
	cmd.Execute()
}
