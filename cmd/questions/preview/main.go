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
		configPath   = flag.String("config", "", "Path to a YAML configuration file")
		day          = flag.Int("day", 0, "Day to preview")
		renderHTML   = flag.Bool("render-html", false, "Render the markdown document into HTML")
		overridesDir = flag.String("overrides-dir", "", "Directory holding topic override frontmatter files")
		logProvider  = flag.String("log-provider", "", "Logging provider (console or gologger); logging is off when empty")
		logLevel     = flag.String("log-level", "", "Minimum log level for the configured provider")
	)

	flag.Parse()

	if *day <= 0 {
		log.Fatalf("--day is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		Command:      "preview",
		ConfigPath:   *configPath,
		OverridesDir: *overridesDir,
		LogProvider:  *logProvider,
		LogLevel:     *logLevel,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}
	defer module.Close()

	handler := generatecmd.NewPreviewDayHandler(
		module.Generator,
		module.Markdown,
		module.Logger,
		generatecmd.FeatureGates{GeneratorEnabled: func() bool { return true }},
		commands.WithTimeout[generatecmd.PreviewDayCommand](0),
	)

	var envelope generatecmd.PreviewEnvelope
	msg := generatecmd.PreviewDayCommand{
		Day:        *day,
		RenderHTML: *renderHTML,
		PreviewCallback: func(preview generatecmd.PreviewEnvelope) {
			envelope = preview
		},
	}

	if err := handler.Execute(context.Background(), msg); err != nil {
		log.Fatalf("preview day %d: %v", *day, err)
	}

	doc := envelope.Document
	if doc == nil {
		log.Fatalf("preview day %d: no document rendered", *day)
	}

	fmt.Fprintf(os.Stdout, "Day: %d\nTopic: %s\nOutput: %s\nChecksum: %s\n\n", doc.Day, doc.Topic, doc.Output, doc.Checksum)

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", string(envelope.HTML))
	} else {
		fmt.Fprintf(os.Stdout, "Markdown Body:\n%s", doc.Markdown)
	}
}
