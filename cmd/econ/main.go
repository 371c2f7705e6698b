package main

import (
	"context"

	"econseries/cmd/econ/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
