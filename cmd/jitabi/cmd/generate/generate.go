// Package generate implements the "generate" CLI command: load an ABI
// JSON document, resolve it, and write a Go package exposing
// Pack<Name>/Unpack<Name> functions and a dispatch table for every
// declared type.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/openrepublic/go-jitabi/abiview"
	"github.com/openrepublic/go-jitabi/codegen"
	"github.com/openrepublic/go-jitabi/internal/gen"
	"github.com/openrepublic/go-jitabi/internal/logging"
	"github.com/openrepublic/go-jitabi/ir"
)

// Command is the CLI command for generate.
var Command = &cli.Command{
	Name:  "generate",
	Usage: "generate a Go codec package from an Antelope ABI JSON file",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Value:    ".",
			OnlyOnce: true,
			Config:   cli.StringConfig{TrimSpace: true},
			Usage:    "output directory",
		},
		&cli.StringFlag{
			Name:     "package",
			Aliases:  []string{"p"},
			Value:    "",
			OnlyOnce: true,
			Config:   cli.StringConfig{TrimSpace: true},
			Usage:    "Go package path for the generated code, inferred from --out if omitted",
		},
		&cli.BoolFlag{
			Name:  "no-pack",
			Usage: "omit encode routines, emitting decode-only wrappers",
		},
		&cli.BoolFlag{
			Name:  "no-unpack",
			Usage: "omit decode routines, emitting encode-only wrappers",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "do not write files; print generated source to stdout",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log each resolution and emission step",
		},
	},
	Action: action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelWarn
	if cmd.Bool("verbose") {
		level = slog.LevelInfo
	}
	log := logging.Logger(os.Stderr, level)

	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("generate: expected exactly one ABI JSON file argument")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	view, err := abiview.DecodeJSON(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	prog, err := ir.Resolve(view)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	log.Info("resolved ABI", "file", args[0], "structs", prog.Structs.Len(), "variants", prog.Variants.Len(), "aliases", prog.Aliases.Len())

	out := cmd.String("out")
	info, err := os.Stat(out)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", out)
	}
	outPerm := info.Mode().Perm()

	pkgPath := cmd.String("package")
	if pkgPath == "" {
		pkgPath, err = gen.PackagePath(out)
		if err != nil {
			return fmt.Errorf("inferring package path for %s: %w", out, err)
		}
	}
	log.Info("package path", "path", pkgPath)

	opts := codegen.DefaultOptions()
	opts.EmitPack = !cmd.Bool("no-pack")
	opts.EmitUnpack = !cmd.Bool("no-unpack")
	opts.Source = data
	opts.Logger = log
	if !opts.EmitPack && !opts.EmitUnpack {
		return fmt.Errorf("generate: --no-pack and --no-unpack cannot both be set")
	}

	pkg, err := codegen.Emit(prog, pkgPath, opts)
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	for name, file := range pkg.Files {
		if !file.HasContent() {
			continue
		}
		content, err := file.Bytes()
		if err != nil {
			if content == nil {
				return err
			}
			log.Warn("generated file did not format cleanly", "file", name, "error", err)
		}

		if dryRun {
			fmt.Println(string(content))
			continue
		}

		path := filepath.Join(out, name)
		if err := os.WriteFile(path, content, outPerm); err != nil {
			return err
		}
		log.Info("wrote file", "path", path)
	}

	return nil
}
