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
	"github.com/goliatone/go-questions/internal/generator"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		configPath   = flag.String("config", "", "Path to a YAML configuration file")
		outputDir    = flag.String("output-dir", "", "Directory the generated files are written under (defaults to the working directory)")
		days         = flag.String("days", "", "Comma separated list of days to generate (defaults to the full curriculum)")
		dryRun       = flag.Bool("dry-run", false, "Render documents without writing them to disk")
		overridesDir = flag.String("overrides-dir", "", "Directory holding topic override frontmatter files")
		historyDSN   = flag.String("history-dsn", "", "SQLite DSN for the build history ledger (enables history when set)")
		logProvider  = flag.String("log-provider", "", "Logging provider (console or gologger); logging is off when empty")
		logLevel     = flag.String("log-level", "", "Minimum log level for the configured provider")
		noDirs       = flag.Bool("no-create-dirs", false, "Fail instead of creating missing parent directories")
		noManifest   = flag.Bool("no-manifest", false, "Skip writing the build manifest")
	)

	flag.Parse()

	requestedDays, err := bootstrap.SplitDays(*days)
	if err != nil {
		log.Fatalf("parse --days: %v", err)
	}

	createDirs := !*noDirs
	writeManifest := !*noManifest

	isDryRun := *dryRun
	hooks := generator.Hooks{
		AfterDocument: func(_ context.Context, doc generator.RenderedDocument) error {
			if !isDryRun {
				fmt.Fprintf(os.Stdout, "✅ Created %s\n", doc.Output)
			}
			return nil
		},
	}

	module, err := moduleBuilder(bootstrap.Options{
		Command:       "generate",
		ConfigPath:    *configPath,
		OutputDir:     *outputDir,
		OverridesDir:  *overridesDir,
		HistoryDSN:    *historyDSN,
		LogProvider:   *logProvider,
		LogLevel:      *logLevel,
		CreateDirs:    &createDirs,
		WriteManifest: &writeManifest,
		Hooks:         hooks,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}
	defer module.Close()

	handler := generatecmd.NewGenerateQuestionsHandler(
		module.Generator,
		module.Logger,
		generatecmd.FeatureGates{GeneratorEnabled: func() bool { return true }},
		commands.WithTimeout[generatecmd.GenerateQuestionsCommand](0),
	)

	var result *generator.BuildResult
	msg := generatecmd.GenerateQuestionsCommand{
		Days:   requestedDays,
		DryRun: isDryRun,
		ResultCallback: func(envelope generatecmd.ResultEnvelope) {
			result = envelope.Result
		},
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("generate interview questions: %v", err)
	}

	if isDryRun && result != nil {
		for _, doc := range result.Documents {
			fmt.Fprintf(os.Stdout, "Would create %s\n", doc.Output)
		}
		fmt.Fprintf(os.Stdout, "Dry run complete: %d documents rendered\n", result.DocumentsBuilt)
		return
	}

	fmt.Fprintln(os.Stdout, "✅ Generated all interview question files!")
}
