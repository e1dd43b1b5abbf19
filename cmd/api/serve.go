package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// serve escucha en addr hasta recibir una señal en stop y entonces apaga el servidor.
// Si Listen falla (puerto ocupado, dirección inválida) devuelve el error sin esperar la señal.
func serve(app *fiber.App, addr string, stop <-chan os.Signal, log zerolog.Logger) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("servidor HTTP: %w", err)
	case <-stop:
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}
