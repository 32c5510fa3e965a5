// import_clientes carga clientes desde un CSV usando las mismas validaciones que la API.
//
// Uso: go run ./cmd/import_clientes [-latin1] [-comma ,] clientes.csv
// Las filas inválidas se reportan y se omiten; el resto se inserta.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/jhoicas/facturacion-api/internal/application/billing"
	"github.com/jhoicas/facturacion-api/internal/domain"
	"github.com/jhoicas/facturacion-api/internal/domain/search"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/facturacion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/facturacion-api/pkg/config"
	"github.com/jhoicas/facturacion-api/pkg/logger"
)

func main() {
	latin1 := flag.Bool("latin1", false, "el archivo está en Windows-1252 (Excel en español)")
	comma := flag.String("comma", ";", "separador de columnas")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_clientes [-latin1] [-comma ;] archivo.csv")
		os.Exit(2)
	}
	sep, _ := utf8.DecodeRuneInString(*comma)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV")
	}
	defer f.Close()

	rows, err := csvimport.ReadCustomers(f, csvimport.Options{Comma: sep, Latin1: *latin1})
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	uc := billing.NewCustomerUseCase(postgres.NewCustomerRepository(pool), search.NewBuilder(cfg.App.Location()))

	var created, skipped int
	for _, row := range rows {
		if _, err := uc.Create(ctx, row.Customer); err != nil {
			if errors.Is(err, domain.ErrInvalidInput) {
				log.Warn().Int("linea", row.Line).Str("motivo", err.Error()).Msg("fila omitida")
				skipped++
				continue
			}
			log.Fatal().Err(err).Int("linea", row.Line).Msg("insertar cliente")
		}
		created++
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("importación terminada")
}
