package main

import (
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/sbruch/ann-dataset/cmd"
)

// main is the entry point of the application. It loads environment overrides
// from a .env file if one exists, starts a goroutine to listen for interrupt
// signals, and executes the main command.
func main() {
	// A missing .env file is not an error; the environment wins either way.
	_ = godotenv.Load()

	// This block sets up a go routine to listen for an interrupt signal which will immediately exit the program
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	// Program entry point
	cmd.Execute()
}

// listenForInterrupt listens for an interrupt signal and exits the program when it is received.
// It takes a channel of os.Signal as a parameter.
func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("Interrupt signal received. Exiting...")
}
