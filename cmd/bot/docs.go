package main

// @title           AtendeBot API
// @version         1.0
// @description     API do bot de atendimento de WhatsApp da drogaria

// @contact.name   Suporte
// @contact.email  suporte@farmatech.com.br

// @host      localhost:8080
// @BasePath  /
