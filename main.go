package main

import "github.com/fintrack-app/backend/cmd"

func main() {
	cmd.Execute()
}
