package main

import (
	"github.com/tgbotosho/content-engine/internal/cmd"
)

func main() {
	cmd.Execute()
}
