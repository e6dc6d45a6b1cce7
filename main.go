package main

import (
	"flag"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"io"
	"log"
	"os"
	"scheduling-simulator/api"
	"scheduling-simulator/config"
	"scheduling-simulator/internal/input"
	"scheduling-simulator/internal/render"
	"scheduling-simulator/internal/schedulers"
)

func main() {
	serve := flag.Bool("serve", false, "serve the scheduling API instead of reading processes from stdin")
	format := flag.String("format", "", "output format: text, json or yaml (overrides output.format)")
	flag.Parse()

	cfg := config.GetSchedulerConfig()
	if *format != "" {
		cfg.OutputFormat = *format
	}

	if *serve {
		app := fiber.New()
		api.Register(app, api.NewSchedulerHandlerImpl(cfg))
		log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
	}

	if err := run(cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run reads one batch, schedules it with every configured algorithm and
// writes the report once every run and chart has succeeded. Prompts share out
// only with the text report; json and yaml keep out machine-readable.
func run(cfg *config.SchedulerConfig, in io.Reader, out, diag io.Writer) error {
	var prompt io.Writer
	if cfg.Prompt {
		prompt = diag
		if cfg.OutputFormat == render.FormatText || cfg.OutputFormat == "" {
			prompt = out
		}
	}
	request, err := input.NewReader(in, prompt).ReadRequest()
	if err != nil {
		return err
	}
	processes, err := request.Processes()
	if err != nil {
		return err
	}

	reports, err := schedulers.RunAll(cfg.Algorithms, processes)
	if err != nil {
		return err
	}

	if cfg.ChartDir != "" {
		for _, r := range reports {
			if _, err := render.Chart(cfg.ChartDir, r); err != nil {
				return err
			}
		}
	}
	return render.Report(out, cfg.OutputFormat, reports)
}
