package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gqlkit/schemakit/directives"
	"github.com/gqlkit/schemakit/language"
	"github.com/gqlkit/schemakit/schema"
)

const rootUsage = `schemakit — GraphQL SDL schema & directive tools

USAGE:
  schemakit <command> [flags]

COMMANDS:
  render           Merge SDL sources, apply built-in directives, print SDL
  check            Validate SDL sources and built-in directive usage
  help             Show help for any command
`

const renderUsage = `render FLAGS:
  -schema <file>   SDL source file. Repeatable; at least one required
  -out <file>      Write rendered SDL to file (default: stdout)
  -builtin <bool>  Apply built-in directives (@deprecated, @specifiedBy)
                   through the directive engine (default: true)
`

const checkUsage = `check FLAGS:
  -schema <file>   SDL source file. Repeatable; at least one required
  (Exits non-zero on parse errors or directive violations)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("schemakit", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "render":
		return cmdRender(cmdArgs)
	case "check":
		return cmdCheck(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "render":
		fmt.Print(renderUsage)
	case "check":
		fmt.Print(checkUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	var schemaFiles stringListFlag
	fs.Var(&schemaFiles, "schema", "")
	out := fs.String("out", "", "")
	builtin := fs.Bool("builtin", true, "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, renderUsage)
		return err
	}

	s, err := buildSchema(schemaFiles)
	if err != nil {
		return err
	}
	if *builtin {
		if _, err := directives.Visit(s, directives.Builtin(), nil); err != nil {
			return err
		}
	}

	sdl := schema.Render(s)
	if *out == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(*out, []byte(sdl), 0644)
}

func cmdCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	var schemaFiles stringListFlag
	fs.Var(&schemaFiles, "schema", "")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, checkUsage)
		return err
	}

	s, err := buildSchema(schemaFiles)
	if err != nil {
		return err
	}
	if _, err := directives.Visit(s, directives.Builtin(), nil); err != nil {
		return err
	}
	return nil
}

func buildSchema(files []string) (*schema.Schema, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("at least one -schema file is required")
	}
	sources := make([]*language.Source, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &language.Source{Name: file, Input: string(content)})
	}
	return schema.BuildFromSources(sources...)
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}
