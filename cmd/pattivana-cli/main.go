package main

import "github.com/nfrund/pattivana/cmd/pattivana-cli/cmd"

func main() {
	cmd.Execute()
}
