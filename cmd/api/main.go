package main

import (
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	app, err := NewApp()
	if err != nil {
		log.Fatalf("Erro ao iniciar a aplicação: %v", err)
	}
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("Erro no servidor: %v", err)
	}
}
