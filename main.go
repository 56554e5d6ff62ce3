package main

import "github.com/MeKo-Tech/voxeltex/internal/cmd"

func main() {
	cmd.Execute()
}
