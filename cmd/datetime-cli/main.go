package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	datetimefield "github.com/goliatone/go-datetimefield"
	"github.com/goliatone/go-datetimefield/internal/prompt"
	"github.com/goliatone/go-datetimefield/pkg/datetime"
	pkgopenapi "github.com/goliatone/go-datetimefield/pkg/openapi"
)

type output struct {
	Value string         `json:"value"`
	Parts datetime.Value `json:"parts"`
}

func main() {
	var (
		valueFlag       = flag.String("value", "", "current canonical value (YYYY-MM-DD HH:MM:SS); empty uses now")
		configFlag      = flag.String("config", "", "picker options file (JSON or YAML)")
		partsFlag       = flag.String("parts", "", "comma separated parts to enable (date,hours,minutes,seconds)")
		setFlag         = flag.String("set", "", "part edits to apply, e.g. hours=75,minutes=3")
		interactiveFlag = flag.Bool("interactive", false, "prompt for each enabled part")
		noClampFlag     = flag.Bool("no-clamp", false, "skip bounds clamping")
		openapiFlag     = flag.String("openapi", "", "list date/time fields found in an OpenAPI document path or URL")
		jsonFlag        = flag.Bool("json", false, "print JSON instead of the bare value")
		verboseFlag     = flag.Bool("verbose", false, "log every change notification to stderr")
		timeoutFlag     = flag.Duration("timeout", 15*time.Second, "timeout for remote documents")
	)
	flag.Parse()

	ctx := context.Background()

	if *openapiFlag != "" {
		if err := listBindings(ctx, *openapiFlag, *timeoutFlag, *jsonFlag); err != nil {
			log.Fatalf("scan document: %v", err)
		}
		return
	}

	fns, err := pickerOptions(*configFlag, *partsFlag, *noClampFlag, *verboseFlag)
	if err != nil {
		log.Fatalf("configure picker: %v", err)
	}

	fields := datetime.NewMapFields(*valueFlag)
	if *verboseFlag {
		fields.Listener = func(part datetime.Part, value string) {
			log.Printf("notify %s=%q", part, value)
		}
	}

	picker, err := datetime.New(fields, fns...)
	if err != nil {
		log.Fatalf("create picker: %v", err)
	}

	var canonical string
	if *interactiveFlag {
		canonical, err = prompt.Run(ctx, prompt.NewSurveyDriver(), fields, picker)
		if errors.Is(err, prompt.ErrAborted) {
			os.Exit(130)
		}
		if err != nil {
			log.Fatalf("prompt: %v", err)
		}
	} else {
		canonical = picker.Show()
		if *setFlag != "" {
			if err := applyEdits(fields, *setFlag); err != nil {
				log.Fatalf("apply edits: %v", err)
			}
			canonical = picker.OnFieldsChanged()
		}
	}

	if !*jsonFlag {
		fmt.Println(canonical)
		return
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{Value: canonical, Parts: picker.Get()}); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

func pickerOptions(configPath, parts string, noClamp, verbose bool) ([]datetime.OptionFn, error) {
	var fns []datetime.OptionFn
	if configPath != "" {
		opts, err := datetime.LoadOptionsFile(configPath)
		if err != nil {
			return nil, err
		}
		fns = append(fns, datetime.WithOptions(opts))
	}
	if parts != "" {
		enabled, err := datetime.ParseParts(parts)
		if err != nil {
			return nil, err
		}
		fns = append(fns, datetime.WithParts(enabled...))
	}
	if noClamp {
		fns = append(fns, datetime.WithValidateBounds(false))
	}
	if verbose {
		fns = append(fns, datetime.WithOnChange(func(value string) {
			log.Printf("changed: %s", value)
		}))
	}
	return fns, nil
}

func applyEdits(fields datetime.Fields, raw string) error {
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("invalid edit %q, expected part=value", entry)
		}
		part, err := datetime.ParsePart(name)
		if err != nil {
			return err
		}
		fields.Set(part, strings.TrimSpace(value))
	}
	return nil
}

func listBindings(ctx context.Context, location string, timeout time.Duration, asJSON bool) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	bindings, err := datetimefield.ScanSource(ctx, parseSource(location), pkgopenapi.WithHTTPFallback(timeout))
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bindings)
	}
	for _, binding := range bindings {
		fmt.Printf("%s\t%s %s\t%s\t%s\n", binding.OperationID, binding.Method, binding.Path, binding.FieldPath, binding.Format)
	}
	return nil
}

func parseSource(raw string) pkgopenapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path)
	}
	return pkgopenapi.SourceFromFile(path)
}
