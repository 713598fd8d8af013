// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

// jsonld builds schema.org JSON-LD documents from YAML/JSON manifests.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/woozymasta/jsonld"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/woozymasta/jsonld"
	_buildTime string
)

// cliOptions describes jsonld CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	JSON     jsonCommand     `command:"json" description:"Convert manifest to JSON-LD text"`
	Tag      tagCommand      `command:"tag" description:"Convert manifest to ld+json script tag"`
	Page     pageCommand     `command:"page" description:"Render manifests into an HTML preview page"`
	Template templateCommand `command:"template" description:"Print built-in page template"`
	Probe    probeCommand    `command:"probe" description:"Print pixel size of images"`

	Global globalFlags `group:"Global"`
}

// globalFlags configures document construction for every subcommand.
type globalFlags struct {
	Host     string `long:"host" description:"Serving host used for default @id, url and mainEntityOfPage" env:"JSONLD_HOST"`
	Path     string `long:"path" description:"Request path used for mainEntityOfPage" env:"JSONLD_PATH"`
	TimeZone string `short:"z" long:"timezone" description:"IANA time zone used to render dates (default: local)" env:"JSONLD_TIMEZONE"`
	Verbose  bool   `short:"v" long:"verbose" description:"Log rejected properties to stderr"`
}

// documentIOArgs groups manifest input and output positional arguments.
type documentIOArgs struct {
	Input  string `positional-arg-name:"input" description:"Manifest file path (optional; stdin when omitted)"`
	Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
}

// jsonCommand prints document JSON.
type jsonCommand struct {
	runner *cliRunner
	Args   documentIOArgs `positional-args:"yes"`
	Pretty bool           `short:"p" long:"pretty" description:"Indent JSON output"`
}

// Execute runs json subcommand.
func (command *jsonCommand) Execute(_ []string) error {
	return command.runner.runDocument(command.Args.Input, command.Args.Output, func(doc *jsonld.Document) (string, error) {
		data, err := doc.EncodeJSON(command.Pretty)
		if err != nil {
			return "", err
		}

		return string(data) + "\n", nil
	})
}

// tagCommand prints document script tag.
type tagCommand struct {
	runner *cliRunner
	Args   documentIOArgs `positional-args:"yes"`
	Pretty bool           `short:"p" long:"pretty" description:"Indent JSON inside the tag"`
}

// Execute runs tag subcommand.
func (command *tagCommand) Execute(_ []string) error {
	return command.runner.runDocument(command.Args.Input, command.Args.Output, func(doc *jsonld.Document) (string, error) {
		if _, err := doc.EncodeJSON(command.Pretty); err != nil {
			return "", err
		}

		return doc.HTMLHeadTag(command.Pretty), nil
	})
}

// pageCommand renders a preview page for one or more manifests.
type pageCommand struct {
	runner *cliRunner
	Args   struct {
		Inputs []string `positional-arg-name:"input" description:"Manifest file paths (stdin when omitted)"`
	} `positional-args:"yes"`

	Output       string `short:"o" long:"output" description:"Output HTML file path (optional; stdout when omitted)"`
	Title        string `short:"T" long:"title" description:"Page title" default:"JSON-LD preview"`
	TemplateName string `short:"t" long:"template" description:"Built-in page template" choice:"preview" choice:"minimal" default:"preview"`
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom page template (.gotmpl)"`
}

// Execute runs page subcommand.
func (command *pageCommand) Execute(_ []string) error {
	return command.runner.runPage(command.Args.Inputs, command.Output, jsonld.PageOptions{
		Title:        command.Title,
		TemplateName: command.TemplateName,
	}, command.TemplatePath)
}

// templateCommand exports built-in page template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateName string `short:"t" long:"template" description:"Built-in page template" choice:"preview" choice:"minimal" default:"preview"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateName, command.Args.Output)
}

// probeCommand prints image sizes.
type probeCommand struct {
	runner *cliRunner
	Args   struct {
		Refs []string `positional-arg-name:"image" description:"Image file paths or http(s) URLs" required:"1"`
	} `positional-args:"yes"`

	Timeout time.Duration `long:"timeout" description:"Timeout for remote images" default:"10s"`
}

// Execute runs probe subcommand.
func (command *probeCommand) Execute(_ []string) error {
	return command.runner.runProbe(command.Args.Refs, command.Timeout)
}

// versionCommand prints version information.
type versionCommand struct {
	runner *cliRunner
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	command.runner.printVersionInfo()
	return nil
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	ctx         context.Context
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	global      *globalFlags
	programName string
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "jsonld"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		ctx:         context.Background(),
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runDocument loads one manifest, builds the document and writes rendered output.
func (runner *cliRunner) runDocument(inputPath, outputPath string, render func(*jsonld.Document) (string, error)) error {
	doc, err := runner.buildDocument(inputPath)
	if err != nil {
		return err
	}

	rendered, err := render(doc)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	return runner.writeOutput(outputPath, rendered, "document")
}

// runPage renders manifests into one HTML page.
func (runner *cliRunner) runPage(inputPaths []string, outputPath string, options jsonld.PageOptions, templatePath string) error {
	if len(inputPaths) == 0 {
		inputPaths = []string{""}
	}

	docs := make([]*jsonld.Document, 0, len(inputPaths))
	for _, inputPath := range inputPaths {
		doc, err := runner.buildDocument(inputPath)
		if err != nil {
			return err
		}

		docs = append(docs, doc)
	}

	if templatePath != "" {
		customTemplate, err := os.ReadFile(templatePath)
		if err != nil {
			return fmt.Errorf("read template file %q: %w", templatePath, err)
		}

		options.TemplateText = string(customTemplate)
	}

	rendered, err := jsonld.RenderPage(docs, options)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return runner.writeOutput(outputPath, rendered, "page")
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := jsonld.BuiltinPageTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl, "template")
}

// runProbe prints "ref<TAB>WIDTHxHEIGHT" for each image.
func (runner *cliRunner) runProbe(refs []string, timeout time.Duration) error {
	probe := jsonld.DefaultProbe{Timeout: timeout}
	failed := 0
	for _, ref := range refs {
		size, ok := probe.Probe(runner.ctx, ref)
		if !ok {
			_, _ = fmt.Fprintf(runner.stderr, "warning: image %q is not readable\n", ref)
			failed++
			continue
		}

		if _, err := fmt.Fprintf(runner.stdout, "%s\t%dx%d\n", ref, size.Width, size.Height); err != nil {
			return fmt.Errorf("write probe result: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("probe: %d of %d images not readable", failed, len(refs))
	}

	return nil
}

// buildDocument reads, validates and builds one manifest.
func (runner *cliRunner) buildDocument(inputPath string) (*jsonld.Document, error) {
	data, sourcePath, err := runner.readManifestInput(inputPath)
	if err != nil {
		return nil, fmt.Errorf("read manifest input: %w", err)
	}

	manifest, err := jsonld.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sourcePath, err)
	}

	for _, tag := range manifest.LanguageTags() {
		if jsonld.ValidLanguageTag(tag) == "" {
			_, _ = fmt.Fprintf(runner.stderr, "warning: %s: language tag %q is not valid BCP 47\n", sourcePath, tag)
		}
	}

	opts, err := runner.documentOptions()
	if err != nil {
		return nil, err
	}

	doc, err := manifest.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: build document: %w", sourcePath, err)
	}

	return doc, nil
}

// documentOptions maps global flags to document options.
func (runner *cliRunner) documentOptions() ([]jsonld.Option, error) {
	global := runner.global
	if global == nil {
		global = &globalFlags{}
	}

	opts := []jsonld.Option{
		jsonld.WithIdentity(jsonld.RequestIdentity{Host: global.Host, Path: global.Path}),
		jsonld.WithContext(runner.ctx),
	}

	if zone := strings.TrimSpace(global.TimeZone); zone != "" {
		loc, err := time.LoadLocation(zone)
		if err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", zone, err)
		}

		opts = append(opts, jsonld.WithTimeLocation(loc))
	}

	if global.Verbose {
		handler := slog.NewTextHandler(runner.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, jsonld.WithLogger(slog.New(handler)))
	}

	return opts, nil
}

// readManifestInput reads manifest from file path or stdin and returns source marker.
func (runner *cliRunner) readManifestInput(path string) ([]byte, string, error) {
	path = strings.TrimSpace(path)
	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read manifest file %q: %w", path, err)
		}

		return data, path, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read manifest from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, "", errors.New("read manifest from stdin: empty input")
	}

	return data, "(stdin)", nil
}

// writeOutput writes text to stdout or to outputPath.
func (runner *cliRunner) writeOutput(outputPath, text, what string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, text); err != nil {
			return fmt.Errorf("write %s to stdout: %w", what, err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(text), 0o600); err != nil {
		return fmt.Errorf("write %s file %q: %w", what, outputPath, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Version.runner = runner
	options.JSON.runner = runner
	options.Tag.runner = runner
	options.Page.runner = runner
	options.Template.runner = runner
	options.Probe.runner = runner
	runner.global = &options.Global

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"json": strings.TrimSpace(fmt.Sprintf(`
Build the document described by a YAML/JSON manifest and print its JSON-LD.
Reads manifest from file argument or stdin; writes JSON to file argument or stdout.

Examples:
> $ %s json --pretty business.yaml
> $ cat event.yaml | %s json --host www.example.com > event.json
`, programName, programName)),
		"tag": strings.TrimSpace(fmt.Sprintf(`
Build the document and print a <script type="application/ld+json"> tag
ready to be embedded into the HTML head.

Examples:
> $ %s tag article.yaml
> $ %s tag --host www.example.com --path /news/1 article.yaml head.html
`, programName, programName)),
		"page": strings.TrimSpace(fmt.Sprintf(`
Render one or more manifests into an HTML page with every script tag in the
head and a pretty-printed copy of the JSON in the body.

Examples:
> $ %s page business.yaml event.yaml -o preview.html
> $ %s page -t minimal article.yaml
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in page template text (`+"`preview` or `minimal`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > preview.gotmpl
> $ %s template -t minimal templates/minimal.gotmpl
`, programName, programName)),
		"probe": strings.TrimSpace(fmt.Sprintf(`
Print pixel size of local or remote images the way image properties resolve them.

Examples:
> $ %s probe logo.png https://www.example.com/cover.webp
`, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func (runner *cliRunner) printVersionInfo() {
	_, _ = fmt.Fprintf(runner.stdout, `url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
