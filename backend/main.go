package main

import "taskbar/backend/cli"

func main() {
	cli.Execute()
}
