// Package describe implements the "describe" CLI command: load an ABI
// JSON document, resolve it, and print the resolved type graph in a
// human-readable form.
package describe

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/openrepublic/go-jitabi/abiview"
	"github.com/openrepublic/go-jitabi/ir"
)

// Command is the CLI command for describe.
var Command = &cli.Command{
	Name:   "describe",
	Usage:  "describe the resolved type graph of an Antelope ABI JSON file",
	Action: action,
}

func action(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return fmt.Errorf("describe: expected exactly one ABI JSON file argument")
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

	if view.Version != "" {
		fmt.Printf("// %s\n\n", view.Version)
	}
	for decl := range prog.AllTypes() {
		describeDecl(decl)
	}
	return nil
}

func describeDecl(decl ir.TypeDecl) {
	switch t := decl.(type) {
	case *ir.Struct:
		base := ""
		if t.Base != nil {
			base = " : " + t.Base.Name
		}
		fmt.Printf("struct %s%s {\n", t.Name, base)
		for _, f := range t.Fields {
			fmt.Printf("\t%s: %s;\n", f.Name, f.Type.String())
		}
		fmt.Println("}")
	case *ir.Variant:
		fmt.Printf("variant %s {\n", t.Name)
		for i, c := range t.Cases {
			fmt.Printf("\t%d: %s;\n", i, c.String())
		}
		fmt.Println("}")
	case *ir.Alias:
		fmt.Printf("type %s = %s;\n", t.Name, t.Target.String())
	}
	fmt.Println()
}
