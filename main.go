package main

import "github.com/jsphweid/bartail/cmd"

func main() {
	cmd.Execute()
}
