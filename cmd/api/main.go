package main

import (
	"log"
	"os"

	_ "invoicedesk/api/swagger" // swagger docs

	"github.com/urfave/cli/v2"
)

// @title           Invoice Desk API
// @version         1.0
// @description     Single-operator invoice generator: edit the form, generate the invoice, deliver it by download, WhatsApp or email.
// @host            localhost:8080
// @BasePath        /
func main() {
	app := &cli.App{
		Name:  "invoicedesk",
		Usage: "generate and deliver service invoices",
		Commands: []*cli.Command{
			serveCommand(),
			renderCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("invoicedesk: %v", err)
	}
}

func envFileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "env-file",
		Value:   "configs/.env",
		Usage:   "dotenv file loaded before reading the environment",
		EnvVars: []string{"ENV_FILE"},
	}
}
