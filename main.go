package main

import "github.com/Mohsinsiddi/kaiascan/cmd"

func main() {
	cmd.Execute()
}
