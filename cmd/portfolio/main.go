package main

import (
	_ "github.com/joho/godotenv/autoload"

	"cjdelfin.dev/internal/cli"
)

func main() {
	cli.Execute()
}
