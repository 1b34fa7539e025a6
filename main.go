package main

import "github.com/jsphweid/midiseq/cmd"

func main() {
	cmd.Execute()
}
