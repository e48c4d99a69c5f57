package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/espencer199015/Binary-Search-Trees/pkg/bst"
	"github.com/espencer199015/Binary-Search-Trees/pkg/input"
)

// config holds the global flags shared by every subcommand.
type config struct {
	inputFile string
	debug     bool
	recursive bool
	jsonOut   bool

	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	cmd := &cobra.Command{
		Use:   "bstctl",
		Short: "Build and inspect binary search trees",
		Long: `bstctl reads tree definitions, one tree per line with whitespace-separated
integers inserted in order, and traverses, searches, draws or compares them.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.log = newLogger(cmd.ErrOrStderr(), cfg.debug)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfg.inputFile, "input", "i", "-", "Input file path (- for stdin)")
	cmd.PersistentFlags().BoolVar(&cfg.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&cfg.recursive, "recursive", false, "Build trees with recursive insertion")
	cmd.PersistentFlags().BoolVar(&cfg.jsonOut, "json", false, "Output in JSON format")

	cmd.AddCommand(
		newTraverseCmd(cfg),
		newFindCmd(cfg),
		newRenderCmd(cfg),
		newEquivCmd(cfg),
	)
	return cmd
}

func newLogger(out io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// readValues loads the tree definitions named by --input.
func (c *config) readValues(cmd *cobra.Command) ([][]int, error) {
	var (
		values [][]int
		err    error
	)
	if c.inputFile == "-" {
		values, err = input.ReadTrees(cmd.InOrStdin())
	} else {
		values, err = input.ReadFile(c.inputFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trees: %w", err)
	}
	c.log.WithFields(logrus.Fields{
		"scope": "INPUT",
		"file":  c.inputFile,
		"trees": len(values),
	}).Debug("loaded tree definitions")
	return values, nil
}

// loadTrees reads --input and builds one tree per line.
func (c *config) loadTrees(cmd *cobra.Command) ([]*bst.BinarySearchTree[int], error) {
	values, err := c.readValues(cmd)
	if err != nil {
		return nil, err
	}
	trees := make([]*bst.BinarySearchTree[int], len(values))
	for i, vals := range values {
		if c.recursive {
			trees[i] = bst.BuildRecursively(vals...)
		} else {
			trees[i] = bst.Build(vals...)
		}
	}
	return trees, nil
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func joinInts(ints []int) string {
	strs := make([]string, len(ints))
	for i, v := range ints {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ")
}
