/*
Copyright © 2025 ulisses177
*/
package main

import (
	"github.com/joho/godotenv"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/cmd"
)

func main() {
	// A missing .env is fine; configuration may come from the environment.
	_ = godotenv.Load()

	cmd.Execute()
}
