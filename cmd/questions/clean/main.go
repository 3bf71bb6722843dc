package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-questions/cmd/questions/internal/bootstrap"
	"github.com/goliatone/go-questions/internal/commands"
	generatecmd "github.com/goliatone/go-questions/internal/commands/generate"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		configPath  = flag.String("config", "", "Path to a YAML configuration file")
		outputDir   = flag.String("output-dir", "", "Directory the generated files live under (defaults to the working directory)")
		logProvider = flag.String("log-provider", "", "Logging provider (console or gologger); logging is off when empty")
		logLevel    = flag.String("log-level", "", "Minimum log level for the configured provider")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		Command:     "clean",
		ConfigPath:  *configPath,
		OutputDir:   *outputDir,
		LogProvider: *logProvider,
		LogLevel:    *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}
	defer module.Close()

	handler := generatecmd.NewCleanHandler(
		module.Generator,
		module.Logger,
		generatecmd.FeatureGates{GeneratorEnabled: func() bool { return true }},
		commands.WithTimeout[generatecmd.CleanCommand](0),
	)

	if err := handler.Execute(context.Background(), generatecmd.CleanCommand{}); err != nil {
		log.Fatalf("clean generated files: %v", err)
	}

	fmt.Fprintln(os.Stdout, "Removed generated interview question files")
}
