package main

// @title           Confeitaria API
// @version         1.0
// @description     API do sistema de PDV e retaguarda para confeitarias

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
