package main

import (
	"github.com/codele-game/codele-go/internal/cli"
)

func main() {
	cli.Execute()
}
