package main

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/treekit/Render"
	"github.com/g-m-twostay/treekit/Trees"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/constraints"
)

// config of a run, from flags or TREEVIEW_* environment variables.
type config struct {
	Strings bool
	Output  string
	Render  string
	Verbose bool
}

func loadConfig(v *viper.Viper) config {
	return config{
		Strings: v.GetBool("strings"),
		Output:  v.GetString("output"),
		Render:  v.GetString("render"),
		Verbose: v.GetBool("verbose"),
	}
}

func presenter(cfg config, out io.Writer) (Render.Presenter, error) {
	switch cfg.Render {
	case "html":
		return Render.NewHTMLPresenter(cfg.Output), nil
	case "terminal":
		return &Render.TerminalPresenter{Out: out}, nil
	case "none", "":
		return nil, nil
	default:
		return nil, errors.Errorf("unknown renderer %q, want html, terminal or none", cfg.Render)
	}
}

// show prints the queries of t and renders it.
func show[T any](cmd *cobra.Command, cfg config, t *Trees.Tree[T]) error {
	p, err := presenter(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	height := "none"
	if h, ok := t.Height(); ok {
		height = fmt.Sprint(h)
	}
	table, err := pterm.DefaultTable.WithData(pterm.TableData{
		{"kind", t.Kind.String()},
		{"size", fmt.Sprint(t.Size())},
		{"height", height},
		{"inorder", fmt.Sprint(t.InOrder())},
		{"preorder", fmt.Sprint(t.PreOrder())},
		{"postorder", fmt.Sprint(t.PostOrder())},
	}).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	if p == nil {
		return nil
	}
	if t.Empty() {
		pterm.Debug.Println("empty tree, nothing to render")
	}
	return errors.WithMessage(Render.Render(t, p), "render")
}

// build a tree of the given mode from toks.
func build[T constraints.Ordered](mode string, toks []string, conv func(string) (T, error)) (*Trees.Tree[T], error) {
	if mode == "level" {
		s, err := parseSlots(toks, conv)
		if err != nil {
			return nil, err
		}
		return Trees.FromLevelOrder(s), nil
	}
	vs, err := parseValues(toks, conv)
	if err != nil {
		return nil, err
	}
	switch mode {
	case "sorted":
		return Trees.SearchTreeFromSorted(vs), nil
	case "preorder":
		return Trees.SearchTreeFromPreorder(vs), nil
	default:
		return Trees.FromValues(vs), nil
	}
}

// buildCmd takes flags only before the first value so that negative numbers
// after it are values. A leading negative number needs a -- in front.
func buildCmd(v *viper.Viper, mode, short, example string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     mode + " [flags] [--] [values...]",
		Short:   short,
		Example: example,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			pterm.Debug.Printfln("building %s tree from %d values", mode, len(args))
			if cfg.Strings {
				t, err := build(mode, args, keepString)
				if err != nil {
					return err
				}
				return show(cmd, cfg, t)
			}
			t, err := build(mode, args, parseInt)
			if err != nil {
				return err
			}
			return show(cmd, cfg, t)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func completeCmd(v *viper.Viper) *cobra.Command {
	var height int
	cmd := &cobra.Command{
		Use:     "complete",
		Short:   "Build the perfect search tree over 0 .. 2^(h+1)-2",
		Example: `treeview complete --height 3`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := Trees.Complete(height)
			if !ok {
				return errors.Errorf("height %d is over the limit of %d", height, Trees.MaxCompleteHeight)
			}
			return show(cmd, loadConfig(v), t)
		},
	}
	cmd.Flags().IntVar(&height, "height", 2, "height of the tree")
	return cmd
}

// newRootCmd returns the treeview command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "treeview",
		Short:         "Build binary trees from sequences, print their traversals and draw them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if loadConfig(v).Verbose {
				pterm.EnableDebugMessages()
			}
		},
	}
	flags := root.PersistentFlags()
	flags.Bool("strings", false, "keep values as text instead of parsing integers")
	flags.StringP("output", "o", "output.html", "path of the html page")
	flags.StringP("render", "r", "terminal", "renderer: html, terminal or none")
	flags.BoolP("verbose", "v", false, "print debug messages")
	cobra.CheckErr(v.BindPFlags(flags))
	v.SetEnvPrefix("TREEVIEW")
	v.AutomaticEnv()

	root.AddCommand(
		buildCmd(v, "level", "Build a tree from its level order, - None null or nil mark absent nodes", `treeview level 1 2 3 4 - - 5`),
		buildCmd(v, "sorted", "Build a balanced search tree from sorted values", `treeview sorted 0 1 2 3 4 5 6`),
		buildCmd(v, "preorder", "Rebuild a search tree from its preorder traversal", `treeview preorder 8 5 1 7 10 12`),
		buildCmd(v, "values", "Build a balanced search tree from values in any order", `treeview values 5 1 5 3
treeview values -r none -- -4 7 -1`),
		completeCmd(v),
	)
	return root
}
