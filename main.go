package main

import "github.com/torresjchristopher/Project-Excelsior-Blockchain-Web3/cmd"

func main() {
	cmd.Execute()
}
