package main

import "github.com/rickfloyd/ndkpath/cmd"

func main() {
	cmd.Execute()
}
