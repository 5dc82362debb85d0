package main

import "github.com/MyCarrier-DevOps/go-kraken/cmd"

func main() {
	cmd.Execute()
}
