package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"os/signal"
	"regexp"
	"slices"
	"strings"
	"syscall"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
	"github.com/creachadair/mds/slice"
	"github.com/creachadair/taskgroup"
	jsoniter "github.com/json-iterator/go"
	"github.com/kr/pretty"
	"github.com/timi2506/rdpfile"
)

func main() {
	root := &command.C{
		Name:  "rdp",
		Usage: "command args...",
		Help:  "Inspect, validate and edit RDP connection files.",
		Commands: []*command.C{
			{
				Name:  "show",
				Usage: "show [--json] [--debug] file [keyfilter]",
				Help: `Print the properties of a connection file.

Properties are listed one per line in canonical key:type:value form,
in sorted key order. The optional keyfilter argument is a regular
expression that restricts the listing to matching keys.

With --json the document is printed as one JSON object instead:
integer values as numbers, text values as strings and binary values
as uppercase hex strings. With --debug the decoded document is dumped
in Go syntax.`,
				SetFlags: command.Flags(flax.MustBind, &showArgs),
				Run:      runShow,
			},
			{
				Name:  "get",
				Usage: "get file key",
				Help: `Print one property value.

The value is printed in its canonical text form with no key or type
tag, for consumption from scripts.`,
				Run: command.Adapt(runGet),
			},
			{
				Name:  "set",
				Usage: "set file key:type:value...",
				Help: `Set properties in a connection file.

Each argument after the file name is one record in the same
key:type:value form the file format uses, for example
"screen mode id:i:2" or "full address:s:host:3389". The file is
rewritten in canonical form with the new values applied. A file that
does not exist yet is created.`,
				Run: runSet,
			},
			{
				Name:  "del",
				Usage: "del file key...",
				Help: `Delete properties from a connection file.

Keys that are not present are ignored. The file is rewritten in
canonical form.`,
				Run: runDel,
			},
			{
				Name:  "check",
				Usage: "check [--known] file...",
				Help: `Validate connection files.

Files are decoded concurrently and one line is reported per file, in
argument order. With --known, keys that are not among the documented
client settings are additionally reported; unknown keys do not make a
file invalid.`,
				SetFlags: command.Flags(flax.MustBind, &checkArgs),
				Run:      runCheck,
			},
			{
				Name:  "convert",
				Usage: "convert [--out file] file...",
				Help: `Rewrite connection files in canonical form.

Inputs in any supported encoding (UTF-8 or UTF-16, with or without a
byte order mark) are decoded and written back as sorted, canonically
formatted UTF-8. By default each file is rewritten in place; with
--out, which requires exactly one input, the result is written to the
given path instead.`,
				SetFlags: command.Flags(flax.MustBind, &convertArgs),
				Run:      runConvert,
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	env := root.NewEnv(nil).SetContext(ctx)
	command.RunOrFail(env, os.Args[1:])
}

var showArgs struct {
	JSON  bool `flag:"json,Print the document as a JSON object"`
	Debug bool `flag:"debug,Dump the decoded document in Go syntax"`
}

func runShow(env *command.Env) error {
	if len(env.Args) < 1 || len(env.Args) > 2 {
		return env.Usagef("show requires a file and an optional key filter")
	}
	args := growTo(env.Args, 2)
	doc, err := readDocument(args[0])
	if err != nil {
		return err
	}

	if showArgs.Debug {
		fmt.Printf("%# v\n", pretty.Formatter(doc))
		return nil
	}

	keys := slices.Sorted(maps.Keys(doc))
	if args[1] != "" {
		f, err := regexp.Compile(args[1])
		if err != nil {
			return err
		}
		keys = slices.Collect(slice.Select(keys, f.MatchString))
	}

	if showArgs.JSON {
		out := make(map[string]any, len(keys))
		for _, k := range keys {
			out[k] = jsonValue(doc[k])
		}
		bs, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(bs))
		return nil
	}

	for _, k := range keys {
		v := doc[k]
		fmt.Printf("%s:%c:%s\n", k, v.Tag(), v)
	}
	return nil
}

func runGet(env *command.Env, path, key string) error {
	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	val, ok := doc[key]
	if !ok {
		return fmt.Errorf("%s has no %q property", path, key)
	}
	fmt.Println(val.String())
	return nil
}

func runSet(env *command.Env) error {
	if len(env.Args) < 2 {
		return env.Usagef("set requires a file and at least one key:type:value record")
	}
	path, records := env.Args[0], env.Args[1:]

	updates, err := rdpfile.DecodeString(strings.Join(records, "\n"))
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if errors.Is(err, fs.ErrNotExist) {
		doc = rdpfile.Document{}
	} else if err != nil {
		return err
	}
	maps.Copy(doc, updates)
	return writeDocument(path, doc)
}

func runDel(env *command.Env) error {
	if len(env.Args) < 2 {
		return env.Usagef("del requires a file and at least one key")
	}
	path, keys := env.Args[0], env.Args[1:]

	doc, err := readDocument(path)
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(doc, k)
	}
	return writeDocument(path, doc)
}

var checkArgs struct {
	Known bool `flag:"known,Report keys the client does not document"`
}

func runCheck(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("check requires at least one file")
	}

	type result struct {
		doc rdpfile.Document
		err error
	}
	results := make([]result, len(env.Args))
	g := taskgroup.New(nil)
	for i, path := range env.Args {
		g.Go(func() error {
			doc, err := readDocument(path)
			results[i] = result{doc, err}
			return err
		})
	}
	failed := g.Wait() != nil

	for i, path := range env.Args {
		r := results[i]
		if r.err != nil {
			fmt.Println(r.err)
			continue
		}
		fmt.Printf("%s: ok (%d properties)\n", path, len(r.doc))
		if !checkArgs.Known {
			continue
		}
		for _, k := range slices.Sorted(maps.Keys(r.doc)) {
			if !rdpfile.WellKnown(k) {
				fmt.Printf("%s: unknown key %q\n", path, k)
			}
		}
	}
	if failed {
		return errors.New("some files are invalid")
	}
	return nil
}

var convertArgs struct {
	Out string `flag:"out,Write the result here instead of rewriting the input"`
}

func runConvert(env *command.Env) error {
	if len(env.Args) == 0 {
		return env.Usagef("convert requires at least one file")
	}
	if convertArgs.Out != "" && len(env.Args) != 1 {
		return env.Usagef("--out requires exactly one input file")
	}

	results := make([]error, len(env.Args))
	g := taskgroup.New(nil)
	for i, path := range env.Args {
		out := path
		if convertArgs.Out != "" {
			out = convertArgs.Out
		}
		g.Go(func() error {
			results[i] = convertFile(path, out)
			return results[i]
		})
	}
	failed := g.Wait() != nil

	for _, err := range results {
		if err != nil {
			fmt.Println(err)
		}
	}
	if failed {
		return errors.New("some files were not converted")
	}
	return nil
}
