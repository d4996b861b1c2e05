package main

import (
	"context"
	"log"
	"os"

	"github.com/rxtech-lab/bond-spread/internal/app"
)

func main() {
	cmd := app.NewCurveCommand(app.DefaultConfigLoader)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
