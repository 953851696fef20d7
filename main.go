package main

import "icon-curator/cmd"

func main() {
	cmd.Execute()
}
