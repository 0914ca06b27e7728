package main

import (
	"context"
	"log"
	"os"

	"schedule_backend/internal/feature/symbolextract/adapters"
	"schedule_backend/internal/feature/symbolextract/transport/cli"
	"schedule_backend/internal/feature/symbolextract/usecase"
)

func main() {
	uc := usecase.NewExtractUsecase(adapters.NewLatin1File(adapters.DefaultPath))

	symbols, err := uc.UniqueSymbols(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	if err := cli.WriteReport(os.Stdout, symbols); err != nil {
		log.Fatal(err)
	}
}
